package memory

import (
	"context"
	"sync"

	"github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// AnalysisCache maps project id to at most one vetting result.
// Entries are never evicted; the cache is bounded by process lifetime.
type AnalysisCache struct {
	mu      sync.RWMutex
	results map[projects.ProjectID]*analysis.Result
}

func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{results: make(map[projects.ProjectID]*analysis.Result)}
}

func (c *AnalysisCache) Get(ctx context.Context, id projects.ProjectID) (*analysis.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[id]
	return r, ok
}

// Put inserts or overwrites. Re-vetting replaces the prior verdict.
func (c *AnalysisCache) Put(ctx context.Context, id projects.ProjectID, r *analysis.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[id] = r
}
