package memory

import (
	"context"
	"sync"

	domain "github.com/bryanwahyu/citizenconnect/internal/domain/pitches"
)

// PitchRepository holds community pitches in memory, newest first.
type PitchRepository struct {
	mu      sync.RWMutex
	ordered []*domain.Pitch
	byID    map[domain.PitchID]*domain.Pitch
}

func NewPitchRepository() *PitchRepository {
	return &PitchRepository{byID: make(map[domain.PitchID]*domain.Pitch)}
}

func (r *PitchRepository) List(ctx context.Context) ([]*domain.Pitch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Pitch, len(r.ordered))
	for i, p := range r.ordered {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *PitchRepository) Save(ctx context.Context, p *domain.Pitch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.ordered = append([]*domain.Pitch{&cp}, r.ordered...)
	r.byID[cp.ID] = &cp
	return nil
}

func (r *PitchRepository) Support(ctx context.Context, id domain.PitchID) (*domain.Pitch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.SupportCount++
	cp := *p
	return &cp, nil
}
