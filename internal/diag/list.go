package diag

import "fmt"

// List accumulates diagnostics for one load operation.
// The zero value is not usable; construct with NewList.
type List struct {
	items []Diagnostic
	max   int // 0 means unlimited
}

// NewList creates an unbounded diagnostics list.
func NewList() *List {
	return &List{}
}

// NewListWithLimit creates a list that silently drops diagnostics past max.
// A max of 0 or less means unlimited.
func NewListWithLimit(max int) *List {
	if max < 0 {
		max = 0
	}
	return &List{max: max}
}

// Append adds a diagnostic, honoring the limit.
// Returns false if the diagnostic was dropped.
func (l *List) Append(d Diagnostic) bool {
	if l.max > 0 && len(l.items) >= l.max {
		return false
	}
	l.items = append(l.items, d)
	return true
}

// Add records a diagnostic from its parts.
func (l *List) Add(cat Category, sev Severity, line int, msg string) bool {
	return l.Append(Diagnostic{Category: cat, Severity: sev, Line: line, Message: msg})
}

// Addf records a diagnostic with a formatted message.
func (l *List) Addf(cat Category, sev Severity, line int, format string, args ...any) bool {
	return l.Add(cat, sev, line, fmt.Sprintf(format, args...))
}

// Items returns the accumulated diagnostics.
// The returned slice shares the list's backing array; do not modify it.
func (l *List) Items() []Diagnostic {
	return l.items
}

// Len returns the number of accumulated diagnostics.
func (l *List) Len() int {
	return len(l.items)
}

// HasErrors reports whether any diagnostic has Error severity.
func (l *List) HasErrors() bool {
	for i := range l.items {
		if l.items[i].Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has Warning severity.
func (l *List) HasWarnings() bool {
	for i := range l.items {
		if l.items[i].Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns only the Error-severity diagnostics.
func (l *List) Errors() []Diagnostic {
	return l.filter(SeverityError)
}

// Warnings returns only the Warning-severity diagnostics.
func (l *List) Warnings() []Diagnostic {
	return l.filter(SeverityWarning)
}

func (l *List) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range l.items {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Clear removes all accumulated diagnostics, keeping the limit.
func (l *List) Clear() {
	l.items = nil
}
