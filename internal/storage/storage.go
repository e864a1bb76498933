// Package storage provides the scoped key-value slots the application
// persists its documents in. A slot always holds one whole JSON value;
// there are no partial reads or writes.
package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store is a scoped slot store. Read fills dest with the stored value
// for key and reports whether it did: a missing slot or unparseable
// contents leave dest untouched and return false, so the caller keeps
// whatever default it pre-loaded. Read never fails hard.
type Store interface {
	Read(key string, dest any) bool
	Write(key string, v any) error
	Remove(key string) error
}

// FileStore keeps each slot in its own JSON file under a directory.
// Writes go through a temp file and rename so a slot is always either
// the previous whole value or the new one.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Read(key string, dest any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("storage: slot %q holds unparseable JSON, using default: %v", key, err)
		return false
	}
	return true
}

func (s *FileStore) Write(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
