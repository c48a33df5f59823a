// Package ui is the immediate-mode counterpart of the command queue: the
// same open/close protocol composed through direct recursive calls, with no
// region stack involved. Open-before-children and children-before-close
// ordering holds either way.
package ui

import (
	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

// UI couples the world with the surface of the currently open region.
type UI struct {
	w *world.World
	s *surface.Surface
}

// New returns a UI drawing into the given surface.
func New(w *world.World, s *surface.Surface) UI {
	return UI{w: w, s: s}
}

// World returns the shared-state container.
func (u UI) World() *world.World {
	return u.w
}

// Surface returns the content surface of the open region.
func (u UI) Surface() *surface.Surface {
	return u.s
}

// Add draws a widget into the open region and returns its result.
func (u UI) Add(wdg widget.Widget) widget.Response {
	return wdg.Draw(u.w, u.s)
}

// Show opens a container, calls the closure with a UI scoped to the
// container's content, then closes it and returns the container's result.
func (u UI) Show(c region.Container, f func(UI)) widget.Response {
	data := c.Begin(u.w, u.s)
	if f != nil {
		f(UI{w: u.w, s: data.Content()})
	}
	return c.End(u.w, u.s, data)
}

// RunCached runs a cached computation unit against the open region's
// surface and returns its result.
func (u UI) RunCached(def world.SystemDef[*widget.Draw, widget.Response]) (widget.Response, error) {
	return world.RunCached(u.w, def, &widget.Draw{Surface: u.s})
}

// RunCachedWith is RunCached with extra per-invocation input data.
func (u UI) RunCachedWith(def world.SystemDef[*widget.Draw, widget.Response], extra interface{}) (widget.Response, error) {
	return world.RunCached(u.w, def, &widget.Draw{Surface: u.s, Extra: extra})
}
