package collections

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/scentmap/scentmap/pkg/errors"
)

// Backend is the persistence layer behind the user collections store: a
// keyed local store in which each collection lives under its own key and is
// rehydrated verbatim at next startup.
type Backend interface {
	// Load reads the value stored under key into v. An absent key leaves v
	// untouched and returns nil; only real storage or decode failures error.
	Load(key string, v any) error

	// Save writes v under key, replacing any previous value.
	Save(key string, v any) error
}

// FileBackend persists each key as a JSON file in a directory, the
// per-user analog of browser local storage.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir, creating it if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// path maps a storage key to its JSON file.
func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Load implements Backend.
func (b *FileBackend) Load(key string, v any) error {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Absent key: first run, nothing stored yet
		}
		return errors.WrapPersistence("load", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapPersistence("load", key, err)
	}
	return nil
}

// Save implements Backend.
func (b *FileBackend) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapPersistence("save", key, err)
	}
	if err := os.WriteFile(b.path(key), data, 0o644); err != nil {
		return errors.WrapPersistence("save", key, err)
	}
	return nil
}

// MemoryBackend is an in-process Backend for tests and ephemeral sessions.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Load implements Backend.
func (b *MemoryBackend) Load(key string, v any) error {
	b.mu.Lock()
	data, ok := b.data[key]
	b.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapPersistence("load", key, err)
	}
	return nil
}

// Save implements Backend.
func (b *MemoryBackend) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WrapPersistence("save", key, err)
	}
	b.mu.Lock()
	b.data[key] = data
	b.mu.Unlock()
	return nil
}
