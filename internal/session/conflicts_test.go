package session

import "testing"

func TestConflictsAcrossSets(t *testing.T) {
	s := New(WithFileSystem(newMemFS(map[string]string{
		"a.csv": "Ctrl+S,save\nF1,help",
		"b.csv": "ctrl+s,sync\nAlt+T,hello",
	})))

	if !s.Load("a.csv") || !s.Load("b.csv") {
		t.Fatal("loads should succeed")
	}

	conflicts := s.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("Conflicts() = %v, want 1", conflicts)
	}

	c := conflicts[0]
	if c.Combination != "CTRL+S" {
		t.Errorf("Combination = %q, want canonical %q", c.Combination, "CTRL+S")
	}
	if len(c.Sites) != 2 {
		t.Fatalf("Sites = %v, want 2", c.Sites)
	}
	if c.Sites[0].Source != "a.csv" || c.Sites[0].Action != "save" {
		t.Errorf("first site = %+v, want the a.csv binding", c.Sites[0])
	}
	if c.Sites[1].Source != "b.csv" || c.Sites[1].Action != "sync" {
		t.Errorf("second site = %+v, want the b.csv binding", c.Sites[1])
	}
}

func TestConflictsWithinOneSet(t *testing.T) {
	s := New(WithFileSystem(newMemFS(map[string]string{
		"a.csv": "F1,first\nF1,second",
	})))

	if !s.Load("a.csv") {
		t.Fatal("load should succeed")
	}

	conflicts := s.Conflicts()
	if len(conflicts) != 1 || len(conflicts[0].Sites) != 2 {
		t.Fatalf("Conflicts() = %v, want one conflict with two sites", conflicts)
	}
	if conflicts[0].Sites[0].Index != 0 || conflicts[0].Sites[1].Index != 1 {
		t.Errorf("site indexes = %d, %d, want 0, 1",
			conflicts[0].Sites[0].Index, conflicts[0].Sites[1].Index)
	}
}

func TestConflictsSkipDisabledSets(t *testing.T) {
	s := New(WithFileSystem(newMemFS(map[string]string{
		"a.csv": "Ctrl+S,save",
		"b.csv": "Ctrl+S,sync",
	})))

	s.Load("a.csv")
	s.Load("b.csv")
	s.SetEnabled(s.Sets()[1].ID, false)

	if conflicts := s.Conflicts(); len(conflicts) != 0 {
		t.Errorf("Conflicts() = %v, want none once a side is disabled", conflicts)
	}
}

func TestConflictsNoneWhenUnique(t *testing.T) {
	s := New(WithFileSystem(newMemFS(map[string]string{
		"a.csv": "Ctrl+S,save\nAlt+T,hello",
	})))

	s.Load("a.csv")
	if conflicts := s.Conflicts(); conflicts != nil {
		t.Errorf("Conflicts() = %v, want nil", conflicts)
	}
}
