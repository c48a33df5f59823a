// Package script implements the deferred build surface: a FIFO queue of
// open-region, close-region and add-widget commands, the stack of open
// regions they execute against, and the responders that receive widget
// results.
package script

import (
	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/surface"
)

// Stack tracks the currently-open regions, most recently opened last. It
// lives as a World resource from the moment a root region begins until the
// matching close removes it, and must be empty in between builds.
type Stack struct {
	entries []region.Teardown
}

// Push stores the teardown data of a freshly opened region.
func (s *Stack) Push(data region.Teardown) {
	s.entries = append(s.entries, data)
}

// Pop removes and returns the innermost open region's teardown data. The
// second return is false when nothing is open; callers report and no-op.
func (s *Stack) Pop() (region.Teardown, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	data := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return data, true
}

// Top returns the innermost open region's content surface for drawing.
func (s *Stack) Top() (*surface.Surface, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].Content(), true
}

// Len reports how many regions are currently open.
func (s *Stack) Len() int {
	return len(s.entries)
}
