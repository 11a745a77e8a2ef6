package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/citizenconnect/internal/domain/projects"
	"github.com/bryanwahyu/citizenconnect/internal/infra/memory"
)

func seededRepo() *memory.ProjectRepository {
	return memory.NewProjectRepository(domain.SeedProjects())
}

func TestVoteUpdatesCounters(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()

	before, err := repo.Get(ctx, "gov-001")
	require.NoError(t, err)

	up, err := repo.Vote(ctx, "gov-001", domain.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, before.Votes+1, up.Votes)
	assert.Equal(t, before.Upvotes+1, up.Upvotes)
	assert.Equal(t, before.Downvotes, up.Downvotes)

	down, err := repo.Vote(ctx, "gov-001", domain.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, before.Votes+2, down.Votes)
	assert.Equal(t, before.Upvotes+1, down.Upvotes)
	assert.Equal(t, before.Downvotes+1, down.Downvotes)

	assert.LessOrEqual(t, down.Upvotes+down.Downvotes, down.Votes)
}

func TestVoteUnknownIDLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Vote(ctx, "nope", domain.VoteUp)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPrependBatchOrdering(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()

	batch := []*domain.Project{
		{ID: "crawled-1", Title: "First"},
		{ID: "crawled-2", Title: "Second"},
	}
	require.NoError(t, repo.PrependBatch(ctx, batch))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	// batch order preserved, batch before all pre-existing entries
	assert.Equal(t, domain.ProjectID("crawled-1"), list[0].ID)
	assert.Equal(t, domain.ProjectID("crawled-2"), list[1].ID)
	assert.Equal(t, domain.ProjectID("gov-001"), list[2].ID)
	assert.Equal(t, domain.ProjectID("gov-002"), list[3].ID)

	// crawled entries are findable by id afterwards
	got, err := repo.Get(ctx, "crawled-2")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}

func TestListIsIdempotentAndIsolated(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()

	a, err := repo.List(ctx)
	require.NoError(t, err)
	b, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// mutating a returned project must not leak into the store
	a[0].Title = "vandalized"
	a[0].Tags[0] = "vandalized"
	c, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, b, c)
}
