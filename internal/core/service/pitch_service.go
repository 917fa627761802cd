package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// PitchService implements pitch creation and the guarded status machine.
type PitchService struct {
	repo     ports.PitchRepository
	startups ports.StartupRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewPitchService(
	repo ports.PitchRepository,
	startups ports.StartupRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *PitchService {
	return &PitchService{repo: repo, startups: startups, users: users, notifier: notifier, log: log}
}

func (s *PitchService) Create(ctx context.Context, actor *domain.User, in ports.CreatePitchInput) (*domain.Pitch, error) {
	startup, err := s.startups.FindByID(ctx, in.StartupID)
	if err != nil {
		return nil, err
	}
	if startup.FounderID != actor.ID {
		return nil, domain.ErrForbidden
	}

	investor, err := s.users.FindByID(ctx, in.InvestorID)
	if err != nil {
		return nil, err
	}
	if investor.Role != domain.RoleInvestor {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	pitch := &domain.Pitch{
		StartupID:  in.StartupID,
		FounderID:  actor.ID,
		InvestorID: in.InvestorID,
		Status:     domain.PitchPending,
		Message:    in.Message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, pitch)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create pitch")
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		RecipientID: in.InvestorID,
		ActorID:     actor.ID,
		Kind:        domain.NotifyPitchReceived,
		Text:        fmt.Sprintf("%s pitched %s to you", actor.Name, startup.Name),
		PitchID:     created.ID,
	})

	s.log.Info().Str("pitch_id", created.ID).Str("startup_id", in.StartupID).Str("investor_id", in.InvestorID).Msg("pitch created")
	return created, nil
}

func (s *PitchService) Get(ctx context.Context, actor *domain.User, id string) (*domain.PitchSummary, error) {
	pitch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.isParty(actor, pitch) {
		return nil, domain.ErrForbidden
	}
	return s.expand(ctx, pitch), nil
}

func (s *PitchService) ListForActor(ctx context.Context, actor *domain.User) ([]domain.PitchSummary, error) {
	pitches, err := s.repo.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.expandAll(ctx, pitches), nil
}

func (s *PitchService) ListByStartup(ctx context.Context, actor *domain.User, startupID string) ([]domain.PitchSummary, error) {
	startup, err := s.startups.FindByID(ctx, startupID)
	if err != nil {
		return nil, err
	}
	if !actor.CanActOn(startup.FounderID) {
		return nil, domain.ErrForbidden
	}

	pitches, err := s.repo.ListByStartup(ctx, startupID)
	if err != nil {
		return nil, err
	}
	return s.expandAll(ctx, pitches), nil
}

// UpdateStatus moves a pitch through pending → viewed → interested|rejected.
// Only the target investor may transition; terminal states reject everything.
func (s *PitchService) UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.PitchStatus) (*domain.Pitch, error) {
	if !domain.ValidPitchStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	pitch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.ID != pitch.InvestorID {
		return nil, domain.ErrForbidden
	}
	if !pitch.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, pitch.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	pitch.Status = status
	pitch.UpdatedAt = time.Now().UTC()

	s.notifier.Notify(ports.NotificationInput{
		RecipientID: pitch.FounderID,
		ActorID:     actor.ID,
		Kind:        domain.NotifyPitchStatus,
		Text:        fmt.Sprintf("your pitch is now %s", status),
		PitchID:     pitch.ID,
	})

	s.log.Info().Str("pitch_id", id).Str("status", string(status)).Msg("pitch status updated")
	return pitch, nil
}

func (s *PitchService) Delete(ctx context.Context, actor *domain.User, id string) error {
	pitch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(pitch.FounderID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *PitchService) isParty(actor *domain.User, p *domain.Pitch) bool {
	return actor.Role == domain.RoleAdmin || actor.ID == p.FounderID || actor.ID == p.InvestorID
}

func (s *PitchService) expand(ctx context.Context, p *domain.Pitch) *domain.PitchSummary {
	summary := &domain.PitchSummary{Pitch: *p}
	if st, err := s.startups.FindByID(ctx, p.StartupID); err == nil {
		summary.Startup = st
	}
	if founder, err := s.users.FindByID(ctx, p.FounderID); err == nil {
		pub := founder.Public()
		summary.Founder = &pub
	}
	if investor, err := s.users.FindByID(ctx, p.InvestorID); err == nil {
		pub := investor.Public()
		summary.Investor = &pub
	}
	return summary
}

func (s *PitchService) expandAll(ctx context.Context, pitches []*domain.Pitch) []domain.PitchSummary {
	out := make([]domain.PitchSummary, 0, len(pitches))
	for _, p := range pitches {
		out = append(out, *s.expand(ctx, p))
	}
	return out
}
