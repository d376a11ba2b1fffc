package storage

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryBlobStore keeps blobs in a map. Used by tests and as a fallback when
// no database is wired.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

type memoryBlob struct {
	data     []byte
	mimeType string
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]memoryBlob)}
}

func (s *MemoryBlobStore) Store(data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := uuid.NewString()
	s.blobs[ref] = memoryBlob{data: data, mimeType: mimeType}
	return ref, nil
}

func (s *MemoryBlobStore) Open(ref string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[ref]
	if !ok {
		return nil, "", ErrBlobNotFound
	}
	return blob.data, blob.mimeType, nil
}

func (s *MemoryBlobStore) Discard(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, ref)
	return nil
}

// Len reports the number of stored blobs.
func (s *MemoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
