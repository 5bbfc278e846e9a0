package interviews

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	list []Experience
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{list: []Experience{}}
}

func (r *MemoryRepo) Add(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first.
	r.list = append([]Experience{exp}, r.list...)
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Experience, len(r.list))
	copy(out, r.list)
	return out, nil
}
