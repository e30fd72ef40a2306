// Package persist stores the game state as a single TOML record.
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/abcedion/engine"
)

// SaveKey tags the record layout; Load rejects a file with another key with ErrForeignSave
const SaveKey = "abcedion_game_state_v7"

// FileName is the default save file name inside the data directory
const FileName = "save.toml"

// ErrForeignSave is returned when the file holds a record of another layout
var ErrForeignSave = errors.New("save file has unknown layout")

type record struct {
	Key   string           `toml:"key"`
	State engine.GameState `toml:"state"`
}

// Store reads and writes the save file
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DataDir returns $XDG_DATA_HOME/abcedion, falling back to ~/.local/share/abcedion
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "abcedion")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "abcedion")
	}
	return "."
}

// DefaultPath returns the save file path inside DataDir
func DefaultPath() string {
	return filepath.Join(DataDir(), FileName)
}

// Path returns the save file path
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the save file
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Exists checks if a save file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the saved state
// A missing file yields the default state with no error
func (s *Store) Load(now time.Time) (engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return engine.DefaultState(now), nil
	}
	if err != nil {
		return engine.DefaultState(now), fmt.Errorf("read save file: %w", err)
	}

	rec := record{State: engine.DefaultState(now)}
	if _, err := toml.Decode(string(data), &rec); err != nil {
		return engine.DefaultState(now), fmt.Errorf("decode save file: %w", err)
	}
	if rec.Key != SaveKey {
		return engine.DefaultState(now), ErrForeignSave
	}
	return rec.State.Normalize(now), nil
}

// Save writes the full state, replacing the file atomically
func (s *Store) Save(state engine.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(record{Key: SaveKey, State: state}); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".save-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}
