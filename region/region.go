// Package region defines the two-phase open/close protocol every UI region
// satisfies, together with the bundled panel, group and layout primitives.
//
// A region type splits into an opener, which produces the teardown data a
// later close needs, and a closer, which consumes that data to finalize the
// region against its parent. The split is what lets arbitrary widget logic
// run between a region's open and its close.
package region

import (
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/theme"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

var styles = theme.Default()

// Teardown is the opaque data an opener produces and the matching closer
// consumes. Content exposes the surface widgets draw into while the region
// is open. Closers recover their concrete teardown type with a plain type
// assertion: a mismatch means the open/close pairing contract was violated
// and is a programming error, not a runtime condition.
type Teardown interface {
	Content() *surface.Surface
}

// Root is a top-level region opened against the screen. End must always run
// for a begun root; it finalizes the region into the screen.
type Root interface {
	Begin(w *world.World, scr *surface.Screen) Teardown
	End(w *world.World, data Teardown)
}

// Container is a nested region opened against a parent surface. End
// finalizes the region into its parent and reports the rows it occupied.
// Openers and closers must not touch the region stack themselves; tracking
// open regions is the caller's job.
type Container interface {
	Begin(w *world.World, parent *surface.Surface) Teardown
	End(w *world.World, parent *surface.Surface, data Teardown) widget.Response
}

// BeginFunc is the opener half of a Custom container.
type BeginFunc func(w *world.World, parent *surface.Surface) Teardown

// EndFunc is the closer half of a Custom container.
type EndFunc func(w *world.World, parent *surface.Surface, data Teardown) widget.Response

// Custom assembles a container from independently authored opener and closer
// halves, for region types whose two phases do not share a value.
type Custom struct {
	BeginFn BeginFunc
	EndFn   EndFunc
}

func (c Custom) Begin(w *world.World, parent *surface.Surface) Teardown {
	return c.BeginFn(w, parent)
}

func (c Custom) End(w *world.World, parent *surface.Surface, data Teardown) widget.Response {
	return c.EndFn(w, parent, data)
}
