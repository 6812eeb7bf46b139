package storage

import (
	"sync"

	"github.com/curate-labs/imagemeta/internal/batch"
)

// BatchStore holds the batches of the running process, keyed by batch id.
// The store itself is safe for concurrent lookups; mutation of a batch's
// contents stays single-writer per batch.
type BatchStore struct {
	batches map[string]*batch.Batch
	mu      sync.RWMutex
}

func New() *BatchStore {
	return &BatchStore{
		batches: make(map[string]*batch.Batch),
	}
}

func (s *BatchStore) Get(batchID string) (*batch.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, exists := s.batches[batchID]
	return b, exists
}

func (s *BatchStore) Set(batchID string, b *batch.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[batchID] = b
}

func (s *BatchStore) GetAll() map[string]*batch.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*batch.Batch, len(s.batches))
	for k, v := range s.batches {
		result[k] = v
	}
	return result
}

func (s *BatchStore) Delete(batchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, batchID)
}
