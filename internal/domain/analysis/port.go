package analysis

import (
	"context"

	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// Gateway port for the external AI service. Single-shot requests only:
// no streaming, no retry, no cancellation once issued.
type Gateway interface {
	// Vet asks the provider for a credibility/feasibility report.
	Vet(ctx context.Context, p *projects.Project) (*Result, error)

	// Crawl asks the provider for up to three public-domain project leads
	// for a location. Failures surface as errors here; the application
	// layer flattens them to an empty batch.
	Crawl(ctx context.Context, location string) ([]projects.CrawledSummary, error)
}

// Cache port: at most one Result per project id, overwrite allowed.
type Cache interface {
	Get(ctx context.Context, id projects.ProjectID) (*Result, bool)
	Put(ctx context.Context, id projects.ProjectID, r *Result)
}
