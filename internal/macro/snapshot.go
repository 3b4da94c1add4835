package macro

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// persistedEntry is the JSON-serializable form of Entry.
type persistedEntry struct {
	Keys   []string `json:"keys"`
	Action string   `json:"action"`
}

// persistedSet represents a single macro set for persistence.
type persistedSet struct {
	ID       string           `json:"id"`
	Source   string           `json:"source"`
	Enabled  bool             `json:"enabled"`
	LoadedAt time.Time        `json:"loaded_at"`
	Entries  []persistedEntry `json:"entries"`
}

// persistedData is the root structure for snapshot persistence.
type persistedData struct {
	Version int            `json:"version"`
	SavedAt time.Time      `json:"saved_at"`
	Sets    []persistedSet `json:"sets"`
}

const snapshotVersion = 1

// SaveSnapshot writes the sets to the specified file as versioned JSON.
// The file is written atomically using a temporary file and rename.
func SaveSnapshot(sets []Set, path string) error {
	data := persistedData{
		Version: snapshotVersion,
		SavedAt: time.Now(),
		Sets:    make([]persistedSet, 0, len(sets)),
	}

	for _, s := range sets {
		ps := persistedSet{
			ID:       s.ID,
			Source:   s.Source,
			Enabled:  s.Enabled,
			LoadedAt: s.LoadedAt,
			Entries:  make([]persistedEntry, len(s.Entries)),
		}
		for i, e := range s.Entries {
			ps.Entries[i] = persistedEntry{Keys: e.Keys, Action: e.Action}
		}
		data.Sets = append(data.Sets, ps)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// LoadSnapshot reads sets from the specified file.
// A missing file is not an error and yields no sets.
func LoadSnapshot(path string) ([]Set, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var data persistedData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	if data.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d (max supported: %d)",
			data.Version, snapshotVersion)
	}

	sets := make([]Set, 0, len(data.Sets))
	for _, ps := range data.Sets {
		s := Set{
			ID:       ps.ID,
			Source:   ps.Source,
			Enabled:  ps.Enabled,
			LoadedAt: ps.LoadedAt,
			Entries:  make([]Entry, len(ps.Entries)),
		}
		for i, pe := range ps.Entries {
			s.Entries[i] = Entry{Keys: pe.Keys, Action: pe.Action}
		}
		sets = append(sets, s)
	}

	return sets, nil
}
