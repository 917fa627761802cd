package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type RatingService struct {
	repo     ports.RatingRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewRatingService(repo ports.RatingRepository, users ports.UserRepository, notifier ports.Notifier, log zerolog.Logger) *RatingService {
	return &RatingService{repo: repo, users: users, notifier: notifier, log: log}
}

func (s *RatingService) Rate(ctx context.Context, actor *domain.User, subjectID, startupID string, score int, comment string) (*domain.Rating, error) {
	if score < 1 || score > 5 || subjectID == actor.ID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.users.FindByID(ctx, subjectID); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		RaterID:   actor.ID,
		SubjectID: subjectID,
		StartupID: startupID,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		RecipientID: subjectID,
		ActorID:     actor.ID,
		Kind:        domain.NotifyRating,
		Text:        fmt.Sprintf("%s rated you %d/5", actor.Name, score),
	})

	return created, nil
}

func (s *RatingService) ListBySubject(ctx context.Context, subjectID string) ([]*domain.Rating, error) {
	return s.repo.ListBySubject(ctx, subjectID)
}

func (s *RatingService) Delete(ctx context.Context, actor *domain.User, id string) error {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(rating.RaterID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
