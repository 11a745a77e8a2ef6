package pitches

import (
	"context"
	"errors"
)

// ErrNotFound indicates the referenced pitch id does not exist.
var ErrNotFound = errors.New("pitch not found")

// Repository port (interface untuk pitch store)
type Repository interface {
	// List returns pitches newest first.
	List(ctx context.Context) ([]*Pitch, error)
	Save(ctx context.Context, p *Pitch) error

	// Support adds one supporter and returns the updated pitch.
	Support(ctx context.Context, id PitchID) (*Pitch, error)
}
