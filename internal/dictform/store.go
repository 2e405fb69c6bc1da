package dictform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the index as JSON to path. The file is written to a temporary
// sibling first and renamed, so a failed save never leaves a partial index.
func Save(path string, idx *Index) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal dictform index: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write dictform index: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync dictform index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dictform index: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename dictform index: %w", err)
	}
	return nil
}

// Load reads an index written by Save.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictform index: %w", err)
	}
	idx := NewIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("parse dictform index %s: %w", path, err)
	}
	return idx, nil
}
