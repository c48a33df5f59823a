package ui

import (
	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
)

// Ctx couples the world with the active top-level rendering context, for
// composing root regions immediately.
type Ctx struct {
	w   *world.World
	scr *surface.Screen
}

// TryCtx resolves the active screen from the world. When no screen is
// present the miss is reported and the second return is false; the frame
// simply draws nothing.
func TryCtx(w *world.World) (Ctx, bool) {
	scr, ok := world.Get[*surface.Screen](w)
	if !ok {
		w.Warnf(world.MissingContext, "no rendering context is active")
		return Ctx{}, false
	}
	return Ctx{w: w, scr: scr}, true
}

// Screen returns the active rendering context.
func (c Ctx) Screen() *surface.Screen {
	return c.scr
}

// Show opens a root region, calls the closure with a UI scoped to the
// root's content, then finalizes the root into the screen.
func (c Ctx) Show(root region.Root, f func(UI)) {
	data := root.Begin(c.w, c.scr)
	if f != nil {
		f(New(c.w, data.Content()))
	}
	root.End(c.w, data)
}
