// Package surface provides the drawing primitives the composition engine
// targets: a Surface is the content handle widgets draw into while a region
// is open, and a Screen is the top-level rendering context root regions
// finalize against.
package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// Surface accumulates rendered lines for one open region. Lines wider than
// the surface are truncated ANSI-aware, so styled content never overflows
// the region's column budget.
type Surface struct {
	width int
	style lipgloss.Style
	lines []string
}

// New returns an unstyled surface with the given width in columns. Widths
// below one column are clamped to one.
func New(width int) *Surface {
	if width < 1 {
		width = 1
	}
	return &Surface{width: width}
}

// NewStyled returns a surface whose rendered output is wrapped in the given
// style.
func NewStyled(width int, style lipgloss.Style) *Surface {
	s := New(width)
	s.style = style
	return s
}

// Width returns the surface width in columns.
func (s *Surface) Width() int {
	return s.width
}

// WriteLine appends a single line, truncating when it exceeds the width.
func (s *Surface) WriteLine(line string) {
	if ansi.StringWidth(line) > s.width {
		line = truncate.String(line, uint(s.width))
	}
	s.lines = append(s.lines, line)
}

// WriteLines appends each of the given lines in order.
func (s *Surface) WriteLines(lines ...string) {
	for _, line := range lines {
		s.WriteLine(line)
	}
}

// LineCount returns the number of lines written so far.
func (s *Surface) LineCount() int {
	return len(s.lines)
}

// Lines returns a copy of the written lines.
func (s *Surface) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Render joins the written lines and applies the surface style.
func (s *Surface) Render() string {
	content := strings.Join(s.lines, "\n")
	return s.style.Render(content)
}
