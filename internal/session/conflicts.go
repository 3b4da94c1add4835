package session

import (
	"github.com/dshills/macrokey/internal/key"
)

// Site names one entry that participates in a conflict.
type Site struct {
	// Source is the path of the set the entry came from.
	Source string

	// Index is the entry's position within its set.
	Index int

	// Action is the entry's action text.
	Action string
}

// Conflict reports one key combination bound by more than one entry.
type Conflict struct {
	// Combination is the canonical form of the conflicting chord.
	Combination string

	// Sites lists every binding of the combination, in load order.
	Sites []Site
}

// Conflicts cross-checks key combinations across all enabled sets and
// reports every combination bound more than once. Combinations are compared
// in canonical form, so "ctrl+s" and "Ctrl+S" collide. This is a post-load,
// report-only pass: loading never runs it implicitly and no resolution is
// attempted.
func (s *Session) Conflicts() []Conflict {
	sites := make(map[string][]Site)
	var order []string

	for _, set := range s.sets {
		if !set.Enabled {
			continue
		}
		for i, e := range set.Entries {
			canon := key.CanonicalCombination(e.Combination())
			if _, seen := sites[canon]; !seen {
				order = append(order, canon)
			}
			sites[canon] = append(sites[canon], Site{
				Source: set.Source,
				Index:  i,
				Action: e.Action,
			})
		}
	}

	var out []Conflict
	for _, canon := range order {
		if len(sites[canon]) > 1 {
			out = append(out, Conflict{Combination: canon, Sites: sites[canon]})
		}
	}
	return out
}
