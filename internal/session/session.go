// Package session tracks the macro sets loaded over the lifetime of a run.
//
// A Session grows by one Set per successful load and never shrinks except
// on explicit Reset. Diagnostics are scoped to a single load call: each
// Load clears the previous call's diagnostics before delegating to the
// loader. The session is for single-goroutine use; every load runs
// synchronously to completion.
package session

import (
	"github.com/dshills/macrokey/internal/diag"
	"github.com/dshills/macrokey/internal/loader"
	"github.com/dshills/macrokey/internal/macro"
)

// Session holds the ordered macro sets from repeated load calls plus the
// diagnostics of the most recent load.
type Session struct {
	fs    loader.FileSystem
	sets  []macro.Set
	diags *diag.List
}

// Option configures a Session.
type Option func(*Session)

// WithFileSystem sets the file system used for loads.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(s *Session) { s.fs = fs }
}

// WithDiagnosticLimit caps the diagnostics recorded per load.
// A limit of 0 or less means unlimited.
func WithDiagnosticLimit(max int) Option {
	return func(s *Session) { s.diags = diag.NewListWithLimit(max) }
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		fs:    loader.DefaultFS(),
		diags: diag.NewList(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the macro file at path and appends the resulting set on
// success. Diagnostics from the previous load are discarded first.
func (s *Session) Load(path string) bool {
	s.diags.Clear()

	l := loader.NewWithFS(s.fs, s.diags)
	set, ok := l.Load(path)
	if !ok {
		return false
	}

	s.sets = append(s.sets, *set)
	return true
}

// Sets returns the loaded sets in load order.
func (s *Session) Sets() []macro.Set {
	out := make([]macro.Set, len(s.sets))
	copy(out, s.sets)
	return out
}

// Len returns the number of loaded sets.
func (s *Session) Len() int {
	return len(s.sets)
}

// LastDiagnostics returns the diagnostics produced by the most recent load.
func (s *Session) LastDiagnostics() []diag.Diagnostic {
	items := s.diags.Items()
	out := make([]diag.Diagnostic, len(items))
	copy(out, items)
	return out
}

// SetEnabled flips the Enabled flag on the set with the given ID.
// Returns false if no set has that ID. Entries are never mutated.
func (s *Session) SetEnabled(id string, enabled bool) bool {
	for i := range s.sets {
		if s.sets[i].ID == id {
			s.sets[i].Enabled = enabled
			return true
		}
	}
	return false
}

// Reset discards all loaded sets and diagnostics.
func (s *Session) Reset() {
	s.sets = nil
	s.diags.Clear()
}
