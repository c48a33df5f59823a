package script

import (
	"fmt"

	"github.com/atomicstack/uiscript/internal/logging/events"
	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

// Queue is the ordered log of deferred build commands for one pass. Build
// closures run immediately while the script is assembled; only the
// open/close/draw operations themselves are deferred until Drain.
type Queue struct {
	cmds []Command
}

// NewQueue returns an empty command queue.
func NewQueue() *Queue {
	return &Queue{}
}

// ShowRoot queues a top-level region: an open command, then whatever the
// build closure enqueues, then the matching close command.
func (q *Queue) ShowRoot(root region.Root, f func(*Builder)) *Queue {
	q.push(openRootCommand{root: root}, "open-root", root)
	if f != nil {
		f(&Builder{q: q})
	}
	q.push(closeRootCommand{root: root}, "close-root", root)
	return q
}

// Len reports how many commands are queued.
func (q *Queue) Len() int {
	return len(q.cmds)
}

// Drain applies every queued command in FIFO order against the world and
// consumes the queue. Region open/close must nest in enqueue order, which is
// why no command may run out of turn.
func (q *Queue) Drain(w *world.World) {
	for _, cmd := range q.cmds {
		cmd.apply(w)
	}
	events.Script.Drained(len(q.cmds))
	q.cmds = nil
}

func (q *Queue) push(cmd Command, kind string, target interface{}) {
	events.Script.Queue(kind, fmt.Sprintf("%T", target))
	q.cmds = append(q.cmds, cmd)
}

// Builder enqueues nested commands inside an open region.
type Builder struct {
	q *Queue
}

// Show queues a container region with the supplied responder for its result,
// running the build closure in between the open and close commands. A nil
// responder discards the result.
func (b *Builder) Show(c region.Container, respond Responder, f func(*Builder)) *Builder {
	if respond == nil {
		respond = Discard{}
	}
	b.q.push(openContainerCommand{container: c}, "open-container", c)
	if f != nil {
		f(b)
	}
	b.q.push(closeContainerCommand{container: c, respond: respond}, "close-container", c)
	return b
}

// Add queues a widget draw with the supplied responder for its result. A nil
// responder discards the result.
func (b *Builder) Add(wdg widget.Widget, respond Responder) *Builder {
	if respond == nil {
		respond = Discard{}
	}
	b.q.push(addWidgetCommand{widget: wdg, respond: respond}, "add-widget", wdg)
	return b
}
