package script

import (
	"github.com/atomicstack/uiscript/internal/logging"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

// Responder is invoked with a widget's or container's result once a deferred
// command has produced it.
type Responder interface {
	Respond(w *world.World, resp widget.Response)
}

// Discard ignores the result.
type Discard struct{}

func (Discard) Respond(*world.World, widget.Response) {}

// Func adapts a plain callback to the Responder contract.
type Func func(w *world.World, resp widget.Response)

func (f Func) Respond(w *world.World, resp widget.Response) {
	f(w, resp)
}

// RespondWith adapts a cached computation unit accepting the response as
// input into a Responder. The invocation is fire-and-forget, for side
// effects such as updating counters. The definition must be an empty struct
// and is validated while the script is being built.
func RespondWith(def world.SystemDef[widget.Response, world.Unit]) Responder {
	world.MustValidateDef(def)
	return cachedResponder{def: def}
}

type cachedResponder struct {
	def world.SystemDef[widget.Response, world.Unit]
}

func (r cachedResponder) Respond(w *world.World, resp widget.Response) {
	if _, err := world.RunCached(w, r.def, resp); err != nil {
		logging.Error(err)
	}
}
