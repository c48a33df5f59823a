package widget

import (
	"sort"

	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Picker draws the items matching a fuzzy query, best match first. An empty
// query lists every item. The response value is the best match, and
// Activated reports whether anything matched at all.
type Picker struct {
	Items []string
	Query string
	// Limit caps how many matches are drawn; zero means no cap.
	Limit int
}

func (p Picker) Draw(w *world.World, s *surface.Surface) Response {
	matches := p.matches()
	if p.Limit > 0 && len(matches) > p.Limit {
		matches = matches[:p.Limit]
	}
	for i, item := range matches {
		style := styles.PickerItem
		if i == 0 && p.Query != "" {
			style = styles.PickerMatch
		}
		s.WriteLine(style.Render(item))
	}
	resp := Response{Lines: len(matches), Activated: len(matches) > 0}
	if len(matches) > 0 {
		resp.Value = matches[0]
	}
	return resp
}

func (p Picker) matches() []string {
	if p.Query == "" {
		out := make([]string, len(p.Items))
		copy(out, p.Items)
		return out
	}
	ranks := fuzzy.RankFindFold(p.Query, p.Items)
	sort.Sort(ranks)
	out := make([]string, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.Target
	}
	return out
}
