package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNegativeIndex is returned when asked to store an index below zero.
var ErrNegativeIndex = errors.New("progress: negative level index")

type file struct {
	Unlocked int `yaml:"chrono_unlocked"`
}

// DefaultPath is progress.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("progress: config dir: %w", err)
	}
	return filepath.Join(dir, "chrono", "progress.yaml"), nil
}

// FileStore keeps the highest unlocked level in a YAML file. A missing,
// unreadable or negative value reads as 0. Stored values never decrease.
type FileStore struct {
	mu       sync.Mutex
	path     string
	unlocked int
}

// Open reads path once. Read problems are not errors; the store starts at 0.
func Open(path string) *FileStore {
	s := &FileStore{path: path}
	s.unlocked = readUnlocked(path)
	return s
}

func readUnlocked(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil || f.Unlocked < 0 {
		return 0
	}
	return f.Unlocked
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) MaxUnlocked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

// SetMaxUnlocked raises the stored index to index and writes it out. Lower
// values are ignored.
func (s *FileStore) SetMaxUnlocked(index int) error {
	if index < 0 {
		return ErrNegativeIndex
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if index <= s.unlocked {
		return nil
	}
	s.unlocked = index

	data, err := yaml.Marshal(file{Unlocked: index})
	if err != nil {
		return fmt.Errorf("progress: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("progress: create dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("progress: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("progress: replace %s: %w", s.path, err)
	}
	return nil
}

// Reset deletes the progress file and starts over at level 0.
func (s *FileStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = 0
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("progress: remove %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is an in-memory store with the same rules as FileStore.
type MemoryStore struct {
	Unlocked int
}

func (m *MemoryStore) MaxUnlocked() int {
	if m.Unlocked < 0 {
		return 0
	}
	return m.Unlocked
}

func (m *MemoryStore) Reset() error {
	m.Unlocked = 0
	return nil
}

func (m *MemoryStore) SetMaxUnlocked(index int) error {
	if index < 0 {
		return ErrNegativeIndex
	}
	if index > m.Unlocked {
		m.Unlocked = index
	}
	return nil
}
