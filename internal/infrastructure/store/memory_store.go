package store

import (
	"context"
	"sync"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
)

// MemoryStore is an in-process key-value store. It backs preferences when no
// external store is configured and doubles as the fake in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string

	// FailReads and FailWrites make Get and Set return ErrStorageUnavailable.
	FailReads  bool
	FailWrites bool
}

var _ contract.IKeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailReads {
		return "", false, contract.ErrStorageUnavailable
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return contract.ErrStorageUnavailable
	}
	s.data[key] = value
	return nil
}

// SetFailures toggles failure injection.
func (s *MemoryStore) SetFailures(reads, writes bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailReads = reads
	s.FailWrites = writes
}
