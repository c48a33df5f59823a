package region

import (
	"strings"

	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
)

// Group wraps its children in a bordered box. Symmetric: the same value
// opens and closes the region.
type Group struct {
	Title string
}

type groupData struct {
	child *surface.Surface
	title string
}

func (d groupData) Content() *surface.Surface {
	return d.child
}

func (g Group) Begin(w *world.World, parent *surface.Surface) Teardown {
	// Borders take one column on each side.
	child := surface.New(parent.Width() - 2)
	return groupData{child: child, title: g.Title}
}

func (g Group) End(w *world.World, parent *surface.Surface, data Teardown) widget.Response {
	d := data.(groupData)
	rows := 0
	if d.title != "" {
		parent.WriteLine(styles.GroupTitle.Render(d.title))
		rows++
	}
	box := styles.GroupBorder.Render(strings.Join(d.child.Lines(), "\n"))
	lines := strings.Split(box, "\n")
	parent.WriteLines(lines...)
	rows += len(lines)
	return widget.Response{Lines: rows}
}
