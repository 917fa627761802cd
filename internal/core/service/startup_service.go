package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// StartupService implements listing CRUD with founder ownership.
type StartupService struct {
	repo  ports.StartupRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewStartupService(repo ports.StartupRepository, users ports.UserRepository, log zerolog.Logger) *StartupService {
	return &StartupService{repo: repo, users: users, log: log}
}

func (s *StartupService) Create(ctx context.Context, actor *domain.User, in ports.CreateStartupInput) (*domain.Startup, error) {
	if actor.Role != domain.RoleFounder {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || !domain.ValidStage(in.Stage) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	startup := &domain.Startup{
		FounderID:     actor.ID,
		Name:          in.Name,
		Domain:        in.Domain,
		Stage:         in.Stage,
		Description:   in.Description,
		FundingTarget: in.FundingTarget,
		EquityOffered: in.EquityOffered,
		PitchDeckURL:  in.PitchDeckURL,
		VideoURL:      in.VideoURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, startup)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create startup")
		return nil, err
	}

	s.log.Info().Str("startup_id", created.ID).Str("founder_id", actor.ID).Msg("startup created")
	return created, nil
}

func (s *StartupService) Get(ctx context.Context, id string) (*domain.StartupSummary, error) {
	startup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, startup), nil
}

func (s *StartupService) List(ctx context.Context, filter ports.StartupFilter) ([]domain.StartupSummary, error) {
	startups, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.StartupSummary, 0, len(startups))
	for _, st := range startups {
		out = append(out, *s.expand(ctx, st))
	}
	return out, nil
}

func (s *StartupService) Update(ctx context.Context, actor *domain.User, id string, in ports.UpdateStartupInput) (*domain.Startup, error) {
	startup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanActOn(startup.FounderID) {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		startup.Name = *in.Name
	}
	if in.Domain != nil {
		startup.Domain = *in.Domain
	}
	if in.Stage != nil {
		if !domain.ValidStage(*in.Stage) {
			return nil, domain.ErrInvalidInput
		}
		startup.Stage = *in.Stage
	}
	if in.Description != nil {
		startup.Description = *in.Description
	}
	if in.FundingTarget != nil {
		startup.FundingTarget = *in.FundingTarget
	}
	if in.EquityOffered != nil {
		startup.EquityOffered = *in.EquityOffered
	}
	if in.PitchDeckURL != nil {
		startup.PitchDeckURL = *in.PitchDeckURL
	}
	if in.VideoURL != nil {
		startup.VideoURL = *in.VideoURL
	}
	startup.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, startup); err != nil {
		return nil, err
	}
	return startup, nil
}

func (s *StartupService) Delete(ctx context.Context, actor *domain.User, id string) error {
	startup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(startup.FounderID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// expand attaches the founder's public profile. A missing founder (deleted
// account) leaves the field nil rather than failing the read.
func (s *StartupService) expand(ctx context.Context, st *domain.Startup) *domain.StartupSummary {
	summary := &domain.StartupSummary{Startup: *st}
	founder, err := s.users.FindByID(ctx, st.FounderID)
	if err == nil {
		p := founder.Public()
		summary.Founder = &p
	}
	return summary
}
