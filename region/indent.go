package region

import (
	"strings"

	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

// Indent opens a child scope shifted right by Cols columns. Its opener hands
// out a narrower child surface; its closer reconciles the child's occupied
// rows back into the parent, prefixing each line with the indent.
type Indent struct {
	Cols int
}

type indentData struct {
	child *surface.Surface
	cols  int
}

func (d indentData) Content() *surface.Surface {
	return d.child
}

func (i Indent) Begin(w *world.World, parent *surface.Surface) Teardown {
	cols := i.Cols
	if cols < 0 {
		cols = 0
	}
	return indentData{child: surface.New(parent.Width() - cols), cols: cols}
}

func (i Indent) End(w *world.World, parent *surface.Surface, data Teardown) widget.Response {
	d := data.(indentData)
	prefix := strings.Repeat(" ", d.cols)
	for _, line := range d.child.Lines() {
		parent.WriteLine(prefix + line)
	}
	return widget.Response{Lines: d.child.LineCount()}
}
