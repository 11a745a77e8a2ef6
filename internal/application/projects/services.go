package projects

import (
	"context"
	"log"

	"github.com/bryanwahyu/citizenconnect/internal/application"
	domanalysis "github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	domain "github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// Service implements use-cases untuk the project feed.
// Safe for concurrent use; all state lives behind the Repo.
type Service struct {
	Repo    domain.Repository
	Gateway domanalysis.Gateway
	Clock   application.Clock
}

// ListProjects returns the feed in insertion order, crawled batches first.
func (s *Service) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	return s.Repo.Get(ctx, id)
}

// Vote records one click, one vote. No per-user dedup: the dashboard
// tracks no identity, so voting twice counts twice.
func (s *Service) Vote(ctx context.Context, id domain.ProjectID, dir domain.VoteDirection) (*domain.Project, error) {
	return s.Repo.Vote(ctx, id, dir)
}

// Crawl asks the gateway for project leads and ingests whatever comes back.
// A gateway failure is flattened to an empty batch: the feed must stay
// usable, and the citizen sees "no results found" either way.
func (s *Service) Crawl(ctx context.Context, location string) ([]*domain.Project, error) {
	summaries, err := s.Gateway.Crawl(ctx, location)
	if err != nil {
		log.Printf("crawl failed location=%q: %v", location, err)
		return []*domain.Project{}, nil
	}
	return s.IngestCrawlResults(ctx, location, summaries)
}

// IngestCrawlResults sanitizes raw summaries into full projects and prepends
// them to the feed, preserving the input order within the batch.
func (s *Service) IngestCrawlResults(ctx context.Context, location string, raw []domain.CrawledSummary) ([]*domain.Project, error) {
	now := s.Clock.Now()
	batch := make([]*domain.Project, 0, len(raw))
	for _, r := range raw {
		batch = append(batch, domain.FromCrawled(location, r, now))
	}
	if err := s.Repo.PrependBatch(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Summary rekap feed stats for the dashboard tab.
func (s *Service) Summary(ctx context.Context) (map[string]any, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int)
	var totalBudget int64
	var totalVotes int
	for _, p := range list {
		byStatus[string(p.Status)]++
		totalBudget += p.Budget
		totalVotes += p.Votes
	}
	return map[string]any{
		"total_projects": len(list),
		"by_status":      byStatus,
		"total_budget":   totalBudget,
		"total_votes":    totalVotes,
	}, nil
}
