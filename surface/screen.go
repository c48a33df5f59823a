package surface

import "github.com/charmbracelet/lipgloss"

// Section identifies where on the screen a finalized root region lands.
type Section int

const (
	SectionTop Section = iota
	SectionMain
	SectionBottom
)

// Screen is the active top-level rendering context for one frame. Root
// regions write their rendered output into a section when they end; Frame
// composes the sections into the final view.
type Screen struct {
	width  int
	height int
	top    []string
	main   []string
	bottom []string
}

// NewScreen returns a screen with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Screen{width: width, height: height}
}

// Width returns the screen width in columns.
func (sc *Screen) Width() int {
	return sc.width
}

// Height returns the screen height in rows.
func (sc *Screen) Height() int {
	return sc.height
}

// Write places rendered root content into the given section. Sections keep
// the order in which roots were finalized.
func (sc *Screen) Write(section Section, rendered string) {
	switch section {
	case SectionTop:
		sc.top = append(sc.top, rendered)
	case SectionBottom:
		sc.bottom = append(sc.bottom, rendered)
	default:
		sc.main = append(sc.main, rendered)
	}
}

// Reset clears all sections for a fresh frame, keeping the dimensions.
func (sc *Screen) Reset() {
	sc.top = nil
	sc.main = nil
	sc.bottom = nil
}

// Frame composes the written sections top to bottom into one view string.
func (sc *Screen) Frame() string {
	parts := make([]string, 0, len(sc.top)+len(sc.main)+len(sc.bottom))
	parts = append(parts, sc.top...)
	parts = append(parts, sc.main...)
	parts = append(parts, sc.bottom...)
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
