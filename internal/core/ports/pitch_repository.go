package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// PitchRepository defines persistence operations for pitches.
type PitchRepository interface {
	Create(ctx context.Context, p *domain.Pitch) (*domain.Pitch, error)
	FindByID(ctx context.Context, id string) (*domain.Pitch, error)
	ListByStartup(ctx context.Context, startupID string) ([]*domain.Pitch, error)
	// ListForUser returns pitches where the user is founder or investor.
	ListForUser(ctx context.Context, userID string) ([]*domain.Pitch, error)
	UpdateStatus(ctx context.Context, id string, status domain.PitchStatus) error
	Delete(ctx context.Context, id string) error
}
