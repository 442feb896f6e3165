package api

import (
	"sort"
	"sync"

	"github.com/chantraine-avenir/cavserver/internal/services"
)

// memoryBlobStore keeps entries in memory. Tests use it in place of the
// SQLite store; it satisfies the same read-after-write contract.
type memoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() services.BlobStore {
	return &memoryBlobStore{blobs: map[string][]byte{}}
}

func (s *memoryBlobStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

func (s *memoryBlobStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryBlobStore) ListKeys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

var _ services.BlobStore = (*memoryBlobStore)(nil)
