package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// loadFile reads a JSON array of records from path. A missing file or a parse
// failure is not an error: the seed is written to path and returned, so the
// seed becomes the new on-disk state.
func loadFile[T any](path string, seed []T) ([]T, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		var recs []T
		if jerr := json.Unmarshal(b, &recs); jerr == nil {
			return recs, nil
		}
	}
	recs := make([]T, len(seed))
	copy(recs, seed)
	if err := saveFile(path, recs); err != nil {
		return recs, fmt.Errorf("write seed: %w", err)
	}
	return recs, nil
}

// saveFile replaces path with the full serialized collection. Every save is a
// whole-file rewrite; there are no partial or append writes.
func saveFile[T any](path string, recs []T) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure data dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}
