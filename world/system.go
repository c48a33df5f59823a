package world

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/atomicstack/uiscript/internal/logging/events"
)

// SystemFunc is the runnable half of a cached computation unit. State the
// unit persists across invocations lives in the closure itself.
type SystemFunc[In, Out any] func(w *World, in In) Out

// Unit is the output type of computation units run purely for their side
// effects, such as responder units.
type Unit = struct{}

// SystemDef describes a cached computation unit. The definition is only a
// cache key: implementations must be empty structs, so that identical
// invocations are interchangeable regardless of call site. Per-unit state
// belongs in the closure returned by Init, which runs exactly once per World.
type SystemDef[In, Out any] interface {
	Init(w *World) SystemFunc[In, Out]
}

// systemEntry is the cached, lock-guarded handle for one definition type.
// The mutex is a backstop against reentrant invocation within a build pass;
// it is not an intended usage pattern.
type systemEntry struct {
	mu  sync.Mutex
	run interface{}
}

// ValidateDef rejects definitions that carry state. Closure-capturing values
// and pointer definitions have non-zero size and fail here; only a fieldless
// struct is a stable cache key.
func ValidateDef(def interface{}) error {
	t := reflect.TypeOf(def)
	if t == nil {
		return fmt.Errorf("cached unit definition must not be nil")
	}
	if t.Size() != 0 {
		return fmt.Errorf("cached unit %s carries %d bytes of state; definitions must be empty", t, t.Size())
	}
	return nil
}

// MustValidateDef panics when def carries state. Adapter constructors call
// this while the build script is being assembled, so an invalid definition is
// rejected before any command runs.
func MustValidateDef(def interface{}) {
	if err := ValidateDef(def); err != nil {
		panic(err)
	}
}

// RunCached runs the computation unit described by def with the given input.
// The first invocation for a definition type initialises the unit and caches
// its handle; later invocations, in the same or later frames, reuse it.
func RunCached[In, Out any](w *World, def SystemDef[In, Out], in In) (Out, error) {
	var zero Out
	if err := ValidateDef(def); err != nil {
		return zero, err
	}
	key := reflect.TypeOf(def)
	entry, ok := w.systems[key]
	if !ok {
		entry = &systemEntry{}
		w.systems[key] = entry
		events.System.Init(key.String())
		entry.run = def.Init(w)
	}
	run, ok := entry.run.(SystemFunc[In, Out])
	if !ok {
		return zero, fmt.Errorf("cached unit %s is registered with a different signature", key)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	events.System.Run(key.String())
	return run(w, in), nil
}
