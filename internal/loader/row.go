package loader

import (
	"strings"

	"github.com/dshills/macrokey/internal/diag"
	"github.com/dshills/macrokey/internal/key"
	"github.com/dshills/macrokey/internal/macro"
)

// parseRow validates one raw record and produces a macro entry.
// Rejections are row-scoped: a diagnostic is recorded and the row is
// skipped, never failing the file. The first invalid key token rejects the
// whole row.
func (l *Loader) parseRow(fields []string, line int) (macro.Entry, bool) {
	if len(fields) < 2 {
		l.diags.Add(diag.CategoryRow, diag.SeverityWarning, line,
			"row has fewer than 2 fields, skipping")
		return macro.Entry{}, false
	}

	combination := strings.TrimSpace(fields[0])
	action := strings.TrimSpace(fields[1])
	if combination == "" || action == "" {
		l.diags.Add(diag.CategoryRow, diag.SeverityWarning, line,
			"row has empty fields, skipping")
		return macro.Entry{}, false
	}

	tokens := key.SplitCombination(combination)
	for _, t := range tokens {
		if !key.IsValid(t) {
			l.diags.Addf(diag.CategoryValidation, diag.SeverityWarning, line,
				"invalid key %q in combination %q, skipping row", t, combination)
			return macro.Entry{}, false
		}
	}

	if len(fields) > 2 {
		l.diags.Add(diag.CategoryRow, diag.SeverityWarning, line,
			"row has extra columns, ignoring them")
	}

	return macro.Entry{Keys: tokens, Action: action}, true
}
