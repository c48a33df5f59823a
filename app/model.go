package app

import (
	"github.com/atomicstack/uiscript/script"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
	tea "github.com/charmbracelet/bubbletea"
)

// Model implements tea.Model around a World and a per-frame build script.
type Model struct {
	world  *world.World
	build  BuildFunc
	onMsg  func(msg tea.Msg, w *world.World)
	width  int
	height int
}

// NewModel returns a host model with the given initial dimensions.
func NewModel(w *world.World, width, height int, build BuildFunc) *Model {
	return &Model{world: w, build: build, width: width, height: height}
}

// World exposes the shared-state container, e.g. for seeding resources
// before the program starts.
func (m *Model) World() *world.World {
	return m.world
}

// SetMsgHandler installs a hook that sees every message after the host's own
// handling, letting applications translate input into World state.
func (m *Model) SetMsgHandler(fn func(msg tea.Msg, w *world.World)) {
	m.onMsg = fn
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}
	if m.onMsg != nil {
		m.onMsg(msg, m.world)
	}
	return m, nil
}

// View implements tea.Model by building and draining one frame.
func (m *Model) View() string {
	return m.Frame()
}

// Frame installs a fresh screen resource, assembles the frame's script,
// drains it, and composes the resulting view. The screen is removed again so
// a context is only ever active while its frame is being built.
func (m *Model) Frame() string {
	scr := surface.NewScreen(m.width, m.height)
	world.Insert(m.world, scr)
	m.world.ClearDiagnostics()
	q := script.NewQueue()
	if m.build != nil {
		m.build(q, m.world)
	}
	q.Drain(m.world)
	world.Remove[*surface.Screen](m.world)
	return scr.Frame()
}
