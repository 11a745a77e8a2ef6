package pitches

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bryanwahyu/citizenconnect/internal/application"
	domain "github.com/bryanwahyu/citizenconnect/internal/domain/pitches"
)

// Service implements use-cases untuk community pitches.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// Command untuk submit pitch
type CreatePitchCommand struct {
	UserID           string
	UserName         string
	Title            string
	Location         string
	Problem          string
	ProposedSolution string
	EstimatedBudget  int64
}

func (s *Service) Create(ctx context.Context, cmd CreatePitchCommand) (*domain.Pitch, error) {
	if cmd.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if cmd.Location == "" {
		return nil, fmt.Errorf("location is required")
	}
	userName := cmd.UserName
	if userName == "" {
		userName = "Anonymous Citizen"
	}

	p := &domain.Pitch{
		ID:               domain.PitchID(uuid.New().String()),
		UserID:           cmd.UserID,
		UserName:         userName,
		Title:            cmd.Title,
		Location:         cmd.Location,
		Problem:          cmd.Problem,
		ProposedSolution: cmd.ProposedSolution,
		EstimatedBudget:  cmd.EstimatedBudget,
		Timestamp:        s.Clock.Now(),
		SupportCount:     0,
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Support(ctx context.Context, id domain.PitchID) (*domain.Pitch, error) {
	return s.Repo.Support(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Pitch, error) {
	return s.Repo.List(ctx)
}
