package projects_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/citizenconnect/internal/application"
	appprojects "github.com/bryanwahyu/citizenconnect/internal/application/projects"
	domanalysis "github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	domain "github.com/bryanwahyu/citizenconnect/internal/domain/projects"
	"github.com/bryanwahyu/citizenconnect/internal/infra/memory"
)

type stubGateway struct {
	crawlRes   []domain.CrawledSummary
	crawlErr   error
	crawlCalls int
	lastQuery  string
}

func (g *stubGateway) Vet(ctx context.Context, p *domain.Project) (*domanalysis.Result, error) {
	return nil, domanalysis.ErrUnavailable
}

func (g *stubGateway) Crawl(ctx context.Context, location string) ([]domain.CrawledSummary, error) {
	g.crawlCalls++
	g.lastQuery = location
	return g.crawlRes, g.crawlErr
}

func newService(gw *stubGateway) *appprojects.Service {
	return &appprojects.Service{
		Repo:    memory.NewProjectRepository(domain.SeedProjects()),
		Gateway: gw,
		Clock:   application.FixedClock{T: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)},
	}
}

func TestCrawlIngestsResultsInOrder(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{crawlRes: []domain.CrawledSummary{
		{
			Title:          "Metro Phase 2",
			Budget:         json.Number("900000"),
			ContractorName: "X Corp",
			Status:         "ONGOING",
			Deadline:       "2025-01-01",
		},
		{},
	}}
	svc := newService(gw)

	created, err := svc.Crawl(ctx, "Pune")
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Pune", gw.lastQuery)

	first, second := created[0], created[1]
	assert.Equal(t, "Metro Phase 2", first.Title)
	assert.Equal(t, int64(900000), first.Budget)
	assert.Equal(t, "X Corp", first.Contractor.Name)
	assert.Equal(t, domain.StatusOngoing, first.Status)
	assert.Equal(t, "Pune", first.Location)
	assert.Equal(t, []string{"Crawled", "Public Domain"}, first.Tags)

	assert.Equal(t, "Unknown Project", second.Title)
	assert.Equal(t, int64(0), second.Budget)
	assert.Equal(t, "Unknown", second.Contractor.Name)
	assert.Equal(t, domain.StatusProposed, second.Status)
	assert.Equal(t, "TBD", second.Deadline)

	// both appear before all pre-existing projects, in input order
	list, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, domain.ProjectID("gov-001"), list[2].ID)
}

func TestCrawlGatewayFailureFlattensToEmpty(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{crawlErr: domanalysis.ErrUnavailable}
	svc := newService(gw)

	created, err := svc.Crawl(ctx, "Pune")
	require.NoError(t, err, "a crawl failure must look like no results found")
	assert.Empty(t, created)

	// the feed is untouched and still usable
	list, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestVoteDelegatesAndSignalsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(&stubGateway{})

	p, err := svc.Vote(ctx, "gov-002", domain.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, 561, p.Votes)
	assert.Equal(t, 41, p.Downvotes)

	_, err = svc.Vote(ctx, "missing", domain.VoteUp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummaryAggregates(t *testing.T) {
	ctx := context.Background()
	svc := newService(&stubGateway{})

	got, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, got["total_projects"])
	assert.Equal(t, int64(45000000+8500000), got["total_budget"])
	assert.Equal(t, 1240+560, got["total_votes"])
	assert.Equal(t, map[string]int{"ONGOING": 1, "APPROVED": 1}, got["by_status"])
}
