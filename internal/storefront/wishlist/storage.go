package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage persists wishlist membership on the client.
type Storage interface {
	Load() ([]uint, error)
	Save(ids []uint) error
}

type fileDocument struct {
	ProductIDs []uint `json:"productIds"`
}

// FileStorage keeps membership in a JSON file. A missing file is an empty
// wishlist.
type FileStorage struct {
	Path string
}

func (s FileStorage) Load() ([]uint, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read wishlist: %w", err)
	}
	var doc fileDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return doc.ProductIDs, nil
}

// Save writes to a temp file in the same directory and renames it over Path.
func (s FileStorage) Save(ids []uint) error {
	b, err := json.Marshal(fileDocument{ProductIDs: ids})
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create wishlist dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".wishlist-*")
	if err != nil {
		return fmt.Errorf("write wishlist: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write wishlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write wishlist: %w", err)
	}
	return os.Rename(tmp.Name(), s.Path)
}

type MemoryStorage struct {
	mu  sync.Mutex
	ids []uint
	Err error
}

func (s *MemoryStorage) Load() ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint(nil), s.ids...), nil
}

func (s *MemoryStorage) Save(ids []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.ids = append([]uint(nil), ids...)
	return nil
}
