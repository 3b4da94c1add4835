package macro

import "testing"

func TestEntryCombination(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"Ctrl", "Shift", "F"}, "Ctrl+Shift+F"},
		{[]string{"F1"}, "F1"},
	}

	for _, tt := range tests {
		e := Entry{Keys: tt.keys, Action: "x"}
		if got := e.Combination(); got != tt.want {
			t.Errorf("Combination() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewSetDefaults(t *testing.T) {
	s := NewSet("macros.csv", []Entry{{Keys: []string{"F1"}, Action: "help"}})

	if s.ID == "" {
		t.Error("NewSet should assign an ID")
	}
	if s.Source != "macros.csv" {
		t.Errorf("Source = %q, want %q", s.Source, "macros.csv")
	}
	if !s.Enabled {
		t.Error("new sets should be enabled")
	}
	if s.LoadedAt.IsZero() {
		t.Error("LoadedAt should be set")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	other := NewSet("macros.csv", nil)
	if other.ID == s.ID {
		t.Error("set IDs should be unique")
	}
}

func TestSetClone(t *testing.T) {
	s := NewSet("macros.csv", []Entry{{Keys: []string{"Ctrl", "D"}, Action: "dup"}})
	c := s.Clone()

	c.Entries[0].Keys[0] = "Alt"
	c.Entries[0].Action = "changed"

	if s.Entries[0].Keys[0] != "Ctrl" {
		t.Error("Clone should not share key slices")
	}
	if s.Entries[0].Action != "dup" {
		t.Error("Clone should not share entries")
	}
}
