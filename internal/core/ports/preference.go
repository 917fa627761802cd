package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// PreferenceInput carries an investor's declared matching filters.
type PreferenceInput struct {
	Domains   []string
	Stages    []domain.FundingStage
	Locations []string
	MinEquity float64
	MaxEquity float64
}

type PreferenceRepository interface {
	// Upsert replaces the investor's preference document.
	Upsert(ctx context.Context, p *domain.InvestorPreference) (*domain.InvestorPreference, error)
	FindByInvestor(ctx context.Context, investorID string) (*domain.InvestorPreference, error)
}

type PreferenceService interface {
	// Set stores the acting investor's filters.
	Set(ctx context.Context, actor *domain.User, in PreferenceInput) (*domain.InvestorPreference, error)
	Get(ctx context.Context, investorID string) (*domain.InvestorPreference, error)
}
