package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// CreateStartupInput carries all data needed to create a listing.
type CreateStartupInput struct {
	Name          string
	Domain        string
	Stage         domain.FundingStage
	Description   string
	FundingTarget float64
	EquityOffered float64
	PitchDeckURL  string
	VideoURL      string
}

// UpdateStartupInput carries the mutable listing fields; nil means unchanged.
type UpdateStartupInput struct {
	Name          *string
	Domain        *string
	Stage         *domain.FundingStage
	Description   *string
	FundingTarget *float64
	EquityOffered *float64
	PitchDeckURL  *string
	VideoURL      *string
}

type StartupService interface {
	// Create stamps the acting founder as owner.
	Create(ctx context.Context, actor *domain.User, in CreateStartupInput) (*domain.Startup, error)
	// Get returns the listing with the founder's public profile embedded.
	Get(ctx context.Context, id string) (*domain.StartupSummary, error)
	List(ctx context.Context, filter StartupFilter) ([]domain.StartupSummary, error)
	// Update and Delete require actor to be the owning founder or an admin.
	Update(ctx context.Context, actor *domain.User, id string, in UpdateStartupInput) (*domain.Startup, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
