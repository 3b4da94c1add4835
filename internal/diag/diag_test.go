package diag

import (
	"strings"
	"testing"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{
			Diagnostic{Category: CategoryFile, Severity: SeverityError, Message: "file is empty"},
			"error [file]: file is empty",
		},
		{
			Diagnostic{Category: CategoryRow, Severity: SeverityWarning, Message: "row has empty fields, skipping", Line: 3},
			"warning [row] line 3: row has empty fields, skipping",
		},
		{
			Diagnostic{Category: CategoryValidation, Severity: SeverityWarning, Message: "bad token", Line: 7},
			"warning [validation] line 7: bad token",
		},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestListAccumulation(t *testing.T) {
	l := NewList()
	if l.Len() != 0 || l.HasErrors() || l.HasWarnings() {
		t.Fatal("new list should be empty")
	}

	l.Add(CategoryRow, SeverityWarning, 2, "missing fields")
	l.Addf(CategoryFile, SeverityError, 0, "file %q is empty", "a.csv")

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if !l.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if !l.HasWarnings() {
		t.Error("HasWarnings() = false, want true")
	}
	if got := len(l.Errors()); got != 1 {
		t.Errorf("len(Errors()) = %d, want 1", got)
	}
	if got := len(l.Warnings()); got != 1 {
		t.Errorf("len(Warnings()) = %d, want 1", got)
	}
	if msg := l.Items()[1].Message; !strings.Contains(msg, "a.csv") {
		t.Errorf("Addf message = %q, want it to name the file", msg)
	}
}

func TestListOrderPreserved(t *testing.T) {
	l := NewList()
	l.Add(CategoryRow, SeverityWarning, 1, "first")
	l.Add(CategoryRow, SeverityWarning, 2, "second")
	l.Add(CategoryRow, SeverityWarning, 3, "third")

	for i, want := range []string{"first", "second", "third"} {
		if got := l.Items()[i].Message; got != want {
			t.Errorf("Items()[%d].Message = %q, want %q", i, got, want)
		}
	}
}

func TestListLimit(t *testing.T) {
	l := NewListWithLimit(2)

	if !l.Add(CategoryRow, SeverityWarning, 1, "one") {
		t.Error("first Add should succeed")
	}
	if !l.Add(CategoryRow, SeverityWarning, 2, "two") {
		t.Error("second Add should succeed")
	}
	if l.Add(CategoryRow, SeverityWarning, 3, "three") {
		t.Error("third Add should be dropped")
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}

	// Clearing keeps the limit in force.
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	l.Add(CategoryRow, SeverityWarning, 1, "one")
	l.Add(CategoryRow, SeverityWarning, 2, "two")
	if l.Add(CategoryRow, SeverityWarning, 3, "three") {
		t.Error("limit should survive Clear")
	}
}

func TestListUnlimitedByDefault(t *testing.T) {
	l := NewList()
	for i := 0; i < 100; i++ {
		if !l.Add(CategoryRow, SeverityWarning, i, "w") {
			t.Fatalf("Add %d dropped on unlimited list", i)
		}
	}
	if l.Len() != 100 {
		t.Errorf("Len() = %d, want 100", l.Len())
	}
}
