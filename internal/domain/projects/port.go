package projects

import "context"

// Repository port (interface untuk project store)
type Repository interface {
	// List returns every known project, insertion order, newest batch first.
	List(ctx context.Context) ([]*Project, error)
	Get(ctx context.Context, id ProjectID) (*Project, error)

	// Vote applies one vote atomically and returns the updated project.
	// Returns ErrNotFound (and touches nothing) for an unknown id.
	Vote(ctx context.Context, id ProjectID, dir VoteDirection) (*Project, error)

	// PrependBatch inserts the projects ahead of all existing entries,
	// preserving the relative order of the batch.
	PrependBatch(ctx context.Context, batch []*Project) error
}
