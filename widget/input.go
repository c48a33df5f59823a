package widget

import (
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
	"github.com/charmbracelet/bubbles/textinput"
)

// Input adapts a Bubbles text input to the widget contract. The model stays
// owned by the host, which feeds it key events between frames; the widget
// only draws the current state and reports the entered text.
type Input struct {
	Model textinput.Model
}

// NewInput returns an Input with a configured text input model.
func NewInput(placeholder string) Input {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = styles.InputPrompt.Render("> ")
	return Input{Model: m}
}

func (in Input) Draw(w *world.World, s *surface.Surface) Response {
	s.WriteLine(in.Model.View())
	return Response{Lines: 1, Value: in.Model.Value()}
}
