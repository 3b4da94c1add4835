// Package loader reads keyboard-macro definitions from CSV files into
// validated macro sets, collecting structured diagnostics instead of
// failing outright on malformed rows.
//
// A load runs in two phases. File-level preconditions (existence, .csv
// extension, non-emptiness, not header-only) are fatal: each aborts the
// load with a single Error diagnostic and nothing is committed. Once row
// processing starts, the load always succeeds; malformed rows are skipped
// with Warning diagnostics and well-formed rows accumulate in file order.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"path/filepath"
	"strings"

	"github.com/dshills/macrokey/internal/diag"
	"github.com/dshills/macrokey/internal/macro"
)

// Extension is the only accepted input file extension.
const Extension = ".csv"

// Loader reads one CSV file at a time into a macro.Set, reporting
// conditions through the diagnostics list it was constructed with.
type Loader struct {
	fs    FileSystem
	diags *diag.List
}

// New creates a loader backed by the OS file system.
func New(diags *diag.List) *Loader {
	return NewWithFS(DefaultFS(), diags)
}

// NewWithFS creates a loader with a custom file system.
func NewWithFS(fs FileSystem, diags *diag.List) *Loader {
	return &Loader{fs: fs, diags: diags}
}

// Load reads, validates, and collects the macro definitions in the file at
// path. It returns the new set and true on success. On failure it returns
// nil and false with the reason recorded as an Error diagnostic; no partial
// set is ever produced.
func (l *Loader) Load(path string) (*macro.Set, bool) {
	info, err := l.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		l.diags.Addf(diag.CategoryFile, diag.SeverityError, 0,
			"file %q cannot be opened", path)
		return nil, false
	}

	if !strings.EqualFold(filepath.Ext(path), Extension) {
		l.diags.Addf(diag.CategoryFile, diag.SeverityError, 0,
			"file %q must be a %s file", path, Extension)
		return nil, false
	}

	rows, ok := l.readRows(path)
	if !ok {
		return nil, false
	}

	if len(rows) == 0 {
		l.diags.Addf(diag.CategoryFile, diag.SeverityError, 0,
			"file %q is empty", path)
		return nil, false
	}

	rows, stripped := stripHeader(rows)
	if len(rows) == 0 {
		l.diags.Addf(diag.CategoryFile, diag.SeverityError, 0,
			"file %q contains only headers", path)
		return nil, false
	}

	// Row numbers are 1-based and count the stripped header row.
	offset := 1
	if stripped {
		offset = 2
	}

	var entries []macro.Entry
	for i, fields := range rows {
		if entry, ok := l.parseRow(fields, i+offset); ok {
			entries = append(entries, entry)
		}
	}

	return macro.NewSet(path, entries), true
}

// readRows decodes the whole file into records before any row validation
// begins. Structural CSV faults and read faults abort the load with a
// single Error diagnostic.
func (l *Loader) readRows(path string) ([][]string, bool) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		l.diags.Addf(diag.CategoryFile, diag.SeverityError, 0,
			"file %q cannot be read: %v", path, err)
		return nil, false
	}

	r := csv.NewReader(bytes.NewReader(data))
	// Rows with too few or too many fields reach the row parser instead
	// of erroring at the reader.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			l.diags.Addf(diag.CategoryFormat, diag.SeverityError, parseErr.Line,
				"file %q is not well-formed CSV: %v", path, parseErr.Err)
		} else {
			l.diags.Addf(diag.CategoryFile, diag.SeverityError, 0,
				"file %q cannot be read: %v", path, err)
		}
		return nil, false
	}

	return rows, true
}
