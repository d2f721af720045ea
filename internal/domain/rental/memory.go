package rental

import (
	"context"
	"sync"
)

// MemoryCollection keeps records in process memory.
type MemoryCollection[T any] struct {
	mu      sync.Mutex
	records []T
}

func NewMemoryCollection[T any](records ...T) *MemoryCollection[T] {
	return &MemoryCollection[T]{records: append([]T(nil), records...)}
}

func (m *MemoryCollection[T]) Load(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T{}, m.records...), nil
}

func (m *MemoryCollection[T]) AppendAndSave(ctx context.Context, record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

// MemoryStore is a Store backed by two MemoryCollections.
type MemoryStore struct {
	ClientRecords   *MemoryCollection[Client]
	MaterialRecords *MemoryCollection[Material]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ClientRecords:   NewMemoryCollection[Client](),
		MaterialRecords: NewMemoryCollection[Material](),
	}
}

func (s *MemoryStore) Clients() Collection[Client]     { return s.ClientRecords }
func (s *MemoryStore) Materials() Collection[Material] { return s.MaterialRecords }
