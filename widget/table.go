package widget

import (
	"strings"

	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
)

// Alignment controls how a table column is padded.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table draws rows padded so that every column lines up on the widest entry.
type Table struct {
	Rows       [][]string
	Alignments []Alignment
}

func (t Table) Draw(w *world.World, s *surface.Surface) Response {
	lines := formatRows(t.Rows, t.Alignments)
	for _, line := range lines {
		s.WriteLine(styles.Label.Render(line))
	}
	return Response{Lines: len(lines)}
}

func formatRows(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if c >= colCount {
				break
			}
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c >= colCount {
				break
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - cellWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func cellWidth(text string) int {
	return len([]rune(text))
}
