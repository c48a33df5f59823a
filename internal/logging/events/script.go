package events

import "github.com/atomicstack/uiscript/internal/logging"

// ScriptTracer emits trace entries for command-queue activity.
type ScriptTracer struct{}

// EngineTracer emits trace entries for recoverable engine conditions.
type EngineTracer struct{}

// SystemTracer emits trace entries for cached computation units.
type SystemTracer struct{}

var (
	Script = ScriptTracer{}
	Engine = EngineTracer{}
	System = SystemTracer{}
)

func (ScriptTracer) Queue(kind, target string) {
	logging.Trace("script.queue", map[string]interface{}{"kind": kind, "target": target})
}

func (ScriptTracer) Drained(commands int) {
	logging.Trace("script.drained", map[string]interface{}{"commands": commands})
}

func (EngineTracer) Warn(kind, message string) {
	logging.Trace("engine.warn", map[string]interface{}{"kind": kind, "message": message})
}

func (SystemTracer) Init(def string) {
	logging.Trace("system.init", map[string]interface{}{"def": def})
}

func (SystemTracer) Run(def string) {
	logging.Trace("system.run", map[string]interface{}{"def": def})
}
