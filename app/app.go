// Package app hosts the composition engine inside a Bubble Tea program: it
// owns the World, installs a fresh rendering context each frame, and drains
// the application's build script into it.
package app

import (
	"errors"
	"os"

	"github.com/atomicstack/uiscript/script"
	"github.com/atomicstack/uiscript/world"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options. Zero width or height
// falls back to the detected terminal size.
type Config struct {
	Width  int
	Height int
}

// BuildFunc assembles one frame's build script. It runs once per view.
type BuildFunc func(q *script.Queue, w *world.World)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config, build BuildFunc) error {
	width, height := DetectSize(cfg)
	return RunModel(NewModel(world.New(), width, height, build))
}

// RunModel executes an already-assembled host model, e.g. one with seeded
// resources or a message handler installed.
func RunModel(model *Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// DetectSize resolves the frame dimensions, probing the terminal for any
// dimension the config leaves at zero.
func DetectSize(cfg Config) (width, height int) {
	width, height = cfg.Width, cfg.Height
	if width == 0 || height == 0 {
		if dw, dh, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width == 0 {
				width = dw
			}
			if height == 0 {
				height = dh
			}
		}
	}
	return width, height
}
