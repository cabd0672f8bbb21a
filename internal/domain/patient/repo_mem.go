package patient

import (
	"context"
	"sync"
)

// MemoryRepo holds the canonical patient set in process memory. All reads and
// writes pass through deep copies, so callers never alias stored state.
type MemoryRepo struct {
	mu       sync.RWMutex
	patients []*Patient
	byID     map[string]int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]int)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Patient, len(r.patients))
	for i, p := range r.patients {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.patients[idx].Clone(), nil
}

// Insert prepends, so newly created patients surface first in the unsorted
// listing.
func (r *MemoryRepo) Insert(ctx context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients = append([]*Patient{p.Clone()}, r.patients...)
	for i, stored := range r.patients {
		r.byID[stored.ID] = i
	}
	return nil
}

func (r *MemoryRepo) Replace(ctx context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[p.ID]
	if !ok {
		return ErrNotFound
	}
	r.patients[idx] = p.Clone()
	return nil
}

// Len reports the current patient count.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patients)
}
