package service

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// NotificationService reads the per-recipient notification feed. Writes go
// through the queue dispatcher, not this service.
type NotificationService struct {
	repo ports.NotificationRepository
}

func NewNotificationService(repo ports.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListForActor(ctx context.Context, actor *domain.User) ([]*domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, actor.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != actor.ID {
		return domain.ErrForbidden
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) Delete(ctx context.Context, actor *domain.User, id string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(n.RecipientID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
