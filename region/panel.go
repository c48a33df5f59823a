package region

import (
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
)

// Position selects the screen section a panel is finalized into.
type Position int

const (
	Top Position = iota
	Main
	Bottom
)

// Panel is a top-level region spanning the screen width. Symmetric: the same
// value opens and closes the region.
type Panel struct {
	Title    string
	Position Position
}

type panelData struct {
	child  *surface.Surface
	screen *surface.Screen
	pos    surface.Section
}

func (d panelData) Content() *surface.Surface {
	return d.child
}

func (p Panel) Begin(w *world.World, scr *surface.Screen) Teardown {
	child := surface.New(scr.Width())
	if p.Title != "" {
		child.WriteLine(styles.PanelTitle.Render(p.Title))
	}
	return panelData{child: child, screen: scr, pos: p.section()}
}

func (p Panel) End(w *world.World, data Teardown) {
	d := data.(panelData)
	d.screen.Write(d.pos, d.child.Render())
}

func (p Panel) section() surface.Section {
	switch p.Position {
	case Top:
		return surface.SectionTop
	case Bottom:
		return surface.SectionBottom
	default:
		return surface.SectionMain
	}
}
