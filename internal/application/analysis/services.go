package analysis

import (
	"context"
	"sync"

	domain "github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// Service implements the vetting use-cases: read-through caching plus a
// per-project in-flight guard, so one uncached project costs at most one
// gateway call no matter how many citizens click audit at once.
type Service struct {
	Gateway domain.Gateway
	Cache   domain.Cache

	mu       sync.Mutex
	inflight map[projects.ProjectID]*inflightCall
}

type inflightCall struct {
	done chan struct{}
	res  *domain.Result
	err  error
}

func NewService(gw domain.Gateway, cache domain.Cache) *Service {
	return &Service{
		Gateway:  gw,
		Cache:    cache,
		inflight: make(map[projects.ProjectID]*inflightCall),
	}
}

// GetAnalysis returns the cached verdict for a project, if any.
func (s *Service) GetAnalysis(ctx context.Context, id projects.ProjectID) (*domain.Result, bool) {
	return s.Cache.Get(ctx, id)
}

// RecordAnalysis inserts or overwrites the cached verdict for a project.
func (s *Service) RecordAnalysis(ctx context.Context, id projects.ProjectID, r *domain.Result) {
	s.Cache.Put(ctx, id, r)
}

// RequestVetting returns the cached result without touching the gateway, or
// issues exactly one Vet call for the project. Concurrent callers for the
// same uncached project share the outcome of the single in-flight call.
// A failed call leaves the cache empty, so a later request retries.
func (s *Service) RequestVetting(ctx context.Context, p *projects.Project) (*domain.Result, error) {
	if res, ok := s.Cache.Get(ctx, p.ID); ok {
		return res, nil
	}

	s.mu.Lock()
	if call, ok := s.inflight[p.ID]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.res, call.err
		case <-ctx.Done():
			// the caller gives up; the underlying request still runs to completion
			return nil, ctx.Err()
		}
	}
	// a call may have finished between the optimistic read and the lock
	if res, ok := s.Cache.Get(ctx, p.ID); ok {
		s.mu.Unlock()
		return res, nil
	}
	call := &inflightCall{done: make(chan struct{})}
	s.inflight[p.ID] = call
	s.mu.Unlock()

	res, err := s.Gateway.Vet(ctx, p)
	if err == nil {
		// record before publishing, so followers always observe the cache entry
		s.Cache.Put(ctx, p.ID, res)
	}

	s.mu.Lock()
	delete(s.inflight, p.ID)
	s.mu.Unlock()

	call.res, call.err = res, err
	close(call.done)
	return res, err
}
