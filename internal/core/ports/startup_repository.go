package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// StartupFilter carries the optional list filters. Zero values mean no filter.
type StartupFilter struct {
	FounderID string
	Domain    string
	Stage     domain.FundingStage
}

// StartupRepository defines persistence operations for startup listings.
type StartupRepository interface {
	Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error)
	FindByID(ctx context.Context, id string) (*domain.Startup, error)
	List(ctx context.Context, filter StartupFilter) ([]*domain.Startup, error)
	Update(ctx context.Context, s *domain.Startup) error
	Delete(ctx context.Context, id string) error
}
