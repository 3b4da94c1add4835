// Package diag provides structured diagnostics for macro loading.
//
// Diagnostics are accumulated value objects, never control-flow errors:
// each file- or row-level condition appends a record to a caller-visible
// list and processing continues wherever it can. An Error severity marks a
// file-level failure that aborts the load; a Warning marks a row-level
// condition where the offending row is skipped.
package diag

import "fmt"

// Category identifies what part of the loading pipeline produced a diagnostic.
type Category uint8

const (
	// CategoryFile covers existence, extension, emptiness, and I/O faults.
	CategoryFile Category = iota

	// CategoryFormat covers structural CSV faults from the reader.
	CategoryFormat

	// CategoryRow covers per-row shape problems (missing/empty/extra fields).
	CategoryRow

	// CategoryValidation covers key-grammar violations.
	CategoryValidation
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryFile:
		return "file"
	case CategoryFormat:
		return "format"
	case CategoryRow:
		return "row"
	case CategoryValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Severity defines the impact of a diagnostic.
type Severity uint8

const (
	// SeverityWarning marks a recoverable row-level condition.
	SeverityWarning Severity = iota

	// SeverityError marks a fatal file-level condition.
	SeverityError
)

// String returns a human-readable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single report produced while loading a macro file.
type Diagnostic struct {
	Category Category
	Severity Severity
	Message  string

	// Line is the 1-based row number the diagnostic refers to,
	// or 0 when the diagnostic is not row-specific.
	Line int
}

// String renders the diagnostic in "severity [category]: message" form,
// with the line number appended when present.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s [%s] line %d: %s", d.Severity, d.Category, d.Line, d.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Severity, d.Category, d.Message)
}
