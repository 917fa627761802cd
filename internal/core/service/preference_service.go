package service

import (
	"context"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// PreferenceService stores investors' declared matching filters.
type PreferenceService struct {
	repo ports.PreferenceRepository
}

func NewPreferenceService(repo ports.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) Set(ctx context.Context, actor *domain.User, in ports.PreferenceInput) (*domain.InvestorPreference, error) {
	if actor.Role != domain.RoleInvestor {
		return nil, domain.ErrForbidden
	}
	for _, st := range in.Stages {
		if !domain.ValidStage(st) {
			return nil, domain.ErrInvalidInput
		}
	}

	pref := &domain.InvestorPreference{
		InvestorID: actor.ID,
		Domains:    in.Domains,
		Stages:     in.Stages,
		Locations:  in.Locations,
		MinEquity:  in.MinEquity,
		MaxEquity:  in.MaxEquity,
		UpdatedAt:  time.Now().UTC(),
	}
	return s.repo.Upsert(ctx, pref)
}

func (s *PreferenceService) Get(ctx context.Context, investorID string) (*domain.InvestorPreference, error) {
	return s.repo.FindByInvestor(ctx, investorID)
}
