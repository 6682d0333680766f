package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir resolves the base directory for persisted stores:
// $BENCHSTASH_DATA_DIR, else $XDG_DATA_HOME/benchstash, else
// ~/.local/share/benchstash. Callers resolve this once at the boundary and
// thread it into Load and Save.
func DefaultDir() string {
	if dir := os.Getenv("BENCHSTASH_DATA_DIR"); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "benchstash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "benchstash"
	}
	return filepath.Join(home, ".local", "share", "benchstash")
}

// Path returns the persisted-file location for a storage name.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// Load reads the store persisted under name in dir. A missing file is not
// an error: it yields an empty store. A file that exists but does not hold
// a JSON object wraps ErrCorruptStore.
func Load(dir, name string) (*Store, error) {
	path := Path(dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}
	results := make(map[string]Record)
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, path, err)
	}
	return &Store{Results: results}, nil
}

// Save writes the full store to the same location Load reads from,
// creating the directory if needed. The write replaces any existing file
// and is not atomic: a crash mid-write can corrupt the persisted store,
// which will then fail with ErrCorruptStore on the next load.
func (s *Store) Save(dir, name string) error {
	path := Path(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	data, err := json.MarshalIndent(s.Results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing store %s: %w", path, err)
	}
	return nil
}
