// Package widget defines the one-shot widget contract the composition engine
// draws with, plus adapters that let plain functions, widget sequences,
// externally supplied primitives and cached computation units satisfy it
// uniformly.
package widget

import (
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
)

// Response is the result of drawing a widget or ending a container: how many
// rows it occupied and whatever interaction outcome it reported.
type Response struct {
	// Lines is the number of rows the element occupied in its region.
	Lines int
	// Activated reports an interaction outcome such as a pressed button.
	Activated bool
	// Value carries a widget-specific payload, e.g. an input's text.
	Value string
	// Children holds the per-widget responses of a sequence, in draw order.
	Children []Response
}

// Widget is a one-shot description of a UI element. It is consumed by
// exactly one draw against an open region's content surface.
type Widget interface {
	Draw(w *world.World, s *surface.Surface) Response
}

// Func adapts a plain function to the Widget contract.
type Func func(w *world.World, s *surface.Surface) Response

func (f Func) Draw(w *world.World, s *surface.Surface) Response {
	return f(w, s)
}

// Seq composes widgets into a single widget drawn left to right against the
// same region. The combined response occupies the sum of the children's rows
// and carries the individual results in Children.
func Seq(widgets ...Widget) Widget {
	return seq(widgets)
}

type seq []Widget

func (s seq) Draw(w *world.World, sf *surface.Surface) Response {
	combined := Response{Children: make([]Response, 0, len(s))}
	for _, wdg := range s {
		resp := wdg.Draw(w, sf)
		combined.Lines += resp.Lines
		combined.Activated = combined.Activated || resp.Activated
		combined.Children = append(combined.Children, resp)
	}
	return combined
}
