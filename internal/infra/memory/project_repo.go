package memory

import (
	"context"
	"sync"

	domain "github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// ProjectRepository keeps the authoritative project list in process memory.
// State lives exactly as long as the process; there is no persistence layer.
// All methods hand out clones so callers never share slices with the store.
type ProjectRepository struct {
	mu      sync.RWMutex
	ordered []*domain.Project
	byID    map[domain.ProjectID]*domain.Project
}

func NewProjectRepository(seed []*domain.Project) *ProjectRepository {
	r := &ProjectRepository{
		byID: make(map[domain.ProjectID]*domain.Project, len(seed)),
	}
	for _, p := range seed {
		cp := p.Clone()
		r.ordered = append(r.ordered, cp)
		r.byID[cp.ID] = cp
	}
	return r
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, 0, len(r.ordered))
	for _, p := range r.ordered {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

// Vote applies one vote under the store lock, so the total and the
// direction counter move together. Unknown id leaves the collection untouched.
func (r *ProjectRepository) Vote(ctx context.Context, id domain.ProjectID, dir domain.VoteDirection) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.ApplyVote(dir)
	return p.Clone(), nil
}

// PrependBatch puts the batch ahead of every existing entry, keeping the
// batch's own order: batch[0] becomes the first project in List.
func (r *ProjectRepository) PrependBatch(ctx context.Context, batch []*domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := make([]*domain.Project, 0, len(batch))
	for _, p := range batch {
		cp := p.Clone()
		owned = append(owned, cp)
		r.byID[cp.ID] = cp
	}
	r.ordered = append(owned, r.ordered...)
	return nil
}
