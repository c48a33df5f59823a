package script

import (
	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

// Command is a single-shot deferred build instruction. Each command is an
// independent unit of work: a malformed command reports a diagnostic and
// no-ops without corrupting the rest of the pass.
type Command interface {
	apply(w *world.World)
}

type openRootCommand struct {
	root region.Root
}

func (c openRootCommand) apply(w *world.World) {
	scr, ok := world.Get[*surface.Screen](w)
	if !ok {
		w.Warnf(world.MissingContext, "no rendering context is active")
		return
	}
	data := c.root.Begin(w, scr)
	stack := &Stack{}
	stack.Push(data)
	world.Insert(w, stack)
}

type closeRootCommand struct {
	root region.Root
}

func (c closeRootCommand) apply(w *world.World) {
	stack, ok := world.Remove[*Stack](w)
	if !ok {
		w.Warnf(world.MissingStack, "no region stack is live")
		return
	}
	if n := stack.Len(); n > 1 {
		w.Warnf(world.UnbalancedNesting, "%d container(s) were not ended", n-1)
	}
	// Pop down to the root entry so the stack resource never leaks open
	// containers into the next build.
	for stack.Len() > 1 {
		stack.Pop()
	}
	data, ok := stack.Pop()
	if !ok {
		w.Warnf(world.StackUnderflow, "no root region was begun")
		return
	}
	c.root.End(w, data)
}

type openContainerCommand struct {
	container region.Container
}

func (c openContainerCommand) apply(w *world.World) {
	stack, ok := world.Get[*Stack](w)
	if !ok {
		w.Warnf(world.MissingStack, "no region stack is live")
		return
	}
	parent, ok := stack.Top()
	if !ok {
		w.Warnf(world.StackUnderflow, "no parent region for container")
		return
	}
	stack.Push(c.container.Begin(w, parent))
}

type closeContainerCommand struct {
	container region.Container
	respond   Responder
}

func (c closeContainerCommand) apply(w *world.World) {
	stack, ok := world.Get[*Stack](w)
	if !ok {
		w.Warnf(world.MissingStack, "no region stack is live")
		return
	}
	data, ok := stack.Pop()
	if !ok {
		w.Warnf(world.StackUnderflow, "no container was begun")
		return
	}
	parent, ok := stack.Top()
	if !ok {
		w.Warnf(world.StackUnderflow, "no parent region for container")
		return
	}
	resp := c.container.End(w, parent, data)
	c.respond.Respond(w, resp)
}

type addWidgetCommand struct {
	widget  widget.Widget
	respond Responder
}

func (c addWidgetCommand) apply(w *world.World) {
	stack, ok := world.Get[*Stack](w)
	if !ok {
		w.Warnf(world.MissingStack, "no region stack is live")
		return
	}
	top, ok := stack.Top()
	if !ok {
		w.Warnf(world.StackUnderflow, "no open region to draw into")
		return
	}
	resp := c.widget.Draw(w, top)
	c.respond.Respond(w, resp)
}
