package app

import (
	"strings"
	"testing"

	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/script"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func testBuild(q *script.Queue, w *world.World) {
	q.ShowRoot(region.Panel{Title: "demo", Position: region.Top}, func(b *script.Builder) {
		b.Add(widget.Label{Text: "frame"}, nil)
	})
}

func TestFrameComposesWithoutTerminal(t *testing.T) {
	m := NewModel(world.New(), 40, 10, testBuild)
	frame := ansi.Strip(m.Frame())
	if !strings.Contains(frame, "demo") || !strings.Contains(frame, "frame") {
		t.Fatalf("expected built content in frame, got %q", frame)
	}
	if diags := m.World().Diagnostics(); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	if world.Has[*surface.Screen](m.World()) {
		t.Fatalf("expected screen resource removed after the frame")
	}
}

func TestFrameIsRepeatable(t *testing.T) {
	m := NewModel(world.New(), 40, 10, testBuild)
	first := m.Frame()
	second := m.Frame()
	if first != second {
		t.Fatalf("expected identical frames for identical state")
	}
}

func TestUpdateResizes(t *testing.T) {
	m := NewModel(world.New(), 40, 10, testBuild)
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 4})
	frame := ansi.Strip(m.Frame())
	for _, line := range strings.Split(frame, "\n") {
		if ansi.StringWidth(line) > 12 {
			t.Fatalf("expected lines clipped to resized width, got %q", line)
		}
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	m := NewModel(world.New(), 40, 10, testBuild)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command for q")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command for ctrl+c")
	}
}

func TestMsgHandlerSeesMessages(t *testing.T) {
	m := NewModel(world.New(), 40, 10, testBuild)
	var seen tea.Msg
	m.SetMsgHandler(func(msg tea.Msg, w *world.World) {
		seen = msg
	})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if seen == nil {
		t.Fatalf("expected handler to observe the message")
	}
	if key, ok := seen.(tea.KeyMsg); !ok || key.String() != "enter" {
		t.Fatalf("expected enter key, got %v", seen)
	}
}
