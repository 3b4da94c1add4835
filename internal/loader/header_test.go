package loader

import (
	"strings"
	"testing"

	"github.com/dshills/macrokey/internal/diag"
)

func TestStripHeaderLabels(t *testing.T) {
	tests := []struct {
		first string
		want  bool
	}{
		{"Key Combination", true},
		{"key combination", true},
		{"Key", true},
		{"KEY", true},
		{"Combination", true},
		{"Macro", true},
		{"MACRO", true},
		{"Keys", false},
		{"Action", false},
		{" key", false}, // exact match, no trimming
		{"key ", false},
		{"F1", false},
	}

	for _, tt := range tests {
		rows := [][]string{{tt.first, "x"}, {"F1", "y"}}
		got, stripped := stripHeader(rows)
		if stripped != tt.want {
			t.Errorf("stripHeader first field %q: stripped = %v, want %v", tt.first, stripped, tt.want)
		}
		wantLen := 2
		if tt.want {
			wantLen = 1
		}
		if len(got) != wantLen {
			t.Errorf("stripHeader first field %q: %d rows remain, want %d", tt.first, len(got), wantLen)
		}
	}
}

func TestStripHeaderEdgeRows(t *testing.T) {
	if rows, stripped := stripHeader(nil); stripped || rows != nil {
		t.Error("stripHeader(nil) should change nothing")
	}
	if _, stripped := stripHeader([][]string{{}}); stripped {
		t.Error("a first row with no fields should not be stripped")
	}
}

func TestStripHeaderOnlyOnce(t *testing.T) {
	// A second header-looking row is data and gets validated normally.
	files := map[string]string{
		"h.csv": "Key,Text\nKey,Text\nF1,Hello",
	}
	diags := diag.NewList()
	l := NewWithFS(newMemFS(files), diags)

	set, ok := l.Load("h.csv")
	if !ok {
		t.Fatalf("Load failed: %v", diags.Items())
	}
	if set.Len() != 1 || set.Entries[0].Combination() != "F1" {
		t.Fatalf("entries = %v, want only the F1 row", set.Entries)
	}

	// The second "Key" row fails token validation.
	if diags.Len() != 1 {
		t.Fatalf("diagnostics = %v, want 1", diags.Items())
	}
	d := diags.Items()[0]
	if d.Category != diag.CategoryValidation || d.Line != 2 {
		t.Errorf("diagnostic = %+v, want Validation warning at line 2", d)
	}
	if !strings.Contains(d.Message, `"Key"`) {
		t.Errorf("message = %q, want it to name the rejected token", d.Message)
	}
}
