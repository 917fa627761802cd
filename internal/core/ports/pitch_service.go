package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// CreatePitchInput carries the data for a founder pitching an investor.
type CreatePitchInput struct {
	StartupID  string
	InvestorID string
	Message    string
}

type PitchService interface {
	// Create requires actor to own the startup; the target must be an investor.
	Create(ctx context.Context, actor *domain.User, in CreatePitchInput) (*domain.Pitch, error)
	// Get is restricted to the pitch's founder, its investor, or an admin.
	Get(ctx context.Context, actor *domain.User, id string) (*domain.PitchSummary, error)
	// ListForActor returns pitches the actor is a party to.
	ListForActor(ctx context.Context, actor *domain.User) ([]domain.PitchSummary, error)
	// ListByStartup is restricted to the startup's founder or an admin.
	ListByStartup(ctx context.Context, actor *domain.User, startupID string) ([]domain.PitchSummary, error)
	// UpdateStatus applies the transition table; only the target investor
	// may move a pitch, and terminal states reject further updates.
	UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.PitchStatus) (*domain.Pitch, error)
	// Delete requires the owning founder or an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
