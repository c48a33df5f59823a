package widget

import (
	"strings"

	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/theme"
	"github.com/atomicstack/uiscript/world"
)

var styles = theme.Default()

// Label draws a single styled line of text.
type Label struct {
	Text string
}

func (l Label) Draw(w *world.World, s *surface.Surface) Response {
	s.WriteLine(styles.Label.Render(l.Text))
	return Response{Lines: 1, Value: l.Text}
}

// Button draws a one-line button. The host decides, from its input handling,
// whether the button was pressed this frame; Pressed carries that decision
// into the draw so responders can react to it.
type Button struct {
	Text    string
	Pressed bool
}

func (b Button) Draw(w *world.World, s *surface.Surface) Response {
	style := styles.Button
	if b.Pressed {
		style = styles.ButtonActive
	}
	s.WriteLine(style.Render("[ " + b.Text + " ]"))
	return Response{Lines: 1, Activated: b.Pressed, Value: b.Text}
}

// Divider draws a horizontal rule across the region.
type Divider struct{}

func (Divider) Draw(w *world.World, s *surface.Surface) Response {
	s.WriteLine(styles.Divider.Render(strings.Repeat("─", s.Width())))
	return Response{Lines: 1}
}
