package metadata

import (
	"context"
	"sync"
)

// MemoryRepository keeps slots in a map guarded by a mutex.
type MemoryRepository struct {
	mu    sync.Mutex
	slots map[string][]byte
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{slots: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.slots[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[key] = append([]byte(nil), value...)
	return nil
}
