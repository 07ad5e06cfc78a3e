package store

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests and local tooling. It mirrors
// the backend contract exactly: whole-collection reads and writes, with
// ErrNotFound for collections never written.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]byte)}
}

func (m *MemStore) Read(_ context.Context, collection string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemStore) Write(_ context.Context, collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.collections[collection] = stored
	return nil
}

func (m *MemStore) Ping(_ context.Context) error {
	return nil
}

func (m *MemStore) Close() error {
	return nil
}
