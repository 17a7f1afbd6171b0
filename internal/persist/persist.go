// Package persist keeps stem cache snapshots on disk as JSON.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotVersion is written into every snapshot file.
const SnapshotVersion = 1

// ErrVersion is returned for a snapshot written by an incompatible version.
var ErrVersion = errors.New("unsupported snapshot version")

// Snapshot is the on-disk form of a stem cache: normalized word -> stem.
type Snapshot struct {
	Version int               `json:"version"`
	Stems   map[string]string `json:"stems"`
}

// SaveSnapshot writes stems to path atomically.
func SaveSnapshot(path string, stems map[string]string) error {
	if stems == nil {
		stems = map[string]string{}
	}
	return SaveAtomic(path, Snapshot{Version: SnapshotVersion, Stems: stems})
}

// LoadSnapshot reads stems from path. A missing file yields an empty map.
func LoadSnapshot(path string) (map[string]string, error) {
	snap := Snapshot{Version: SnapshotVersion}
	if err := Load(path, &snap); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("load snapshot %s: %w %d", path, ErrVersion, snap.Version)
	}
	if snap.Stems == nil {
		snap.Stems = map[string]string{}
	}
	return snap.Stems, nil
}

// SaveAtomic marshals v to JSON and writes it through a temp file in the
// same directory followed by a rename, so readers never see a partial file.
func SaveAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads a JSON file into v. A missing file leaves v untouched.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Remove deletes path; a missing file is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
