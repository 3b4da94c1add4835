package macro

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/macrokey/internal/key"
)

// Entry binds a key combination to an action text.
// Keys holds at least one token, each validated against the key grammar
// and trimmed of surrounding whitespace. Action is non-empty after trimming.
type Entry struct {
	Keys   []string
	Action string
}

// Combination returns the entry's keys rejoined with '+'.
func (e Entry) Combination() string {
	return key.JoinCombination(e.Keys)
}

// Set is the collection of macros successfully parsed from one source file.
type Set struct {
	// ID uniquely identifies the set within a session.
	ID string

	// Source is the path the set was loaded from.
	Source string

	// Entries preserve the order of the rows in the source file.
	Entries []Entry

	// Enabled defaults to true. A disabled set is excluded from
	// cross-set reports but stays in the session.
	Enabled bool

	// LoadedAt records when the set was created.
	LoadedAt time.Time
}

// NewSet creates an enabled Set for a source path.
func NewSet(source string, entries []Entry) *Set {
	return &Set{
		ID:       uuid.NewString(),
		Source:   source,
		Entries:  entries,
		Enabled:  true,
		LoadedAt: time.Now(),
	}
}

// Len returns the number of entries in the set.
func (s *Set) Len() int {
	return len(s.Entries)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() Set {
	out := *s
	out.Entries = make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		keys := make([]string, len(e.Keys))
		copy(keys, e.Keys)
		out.Entries[i] = Entry{Keys: keys, Action: e.Action}
	}
	return out
}
