package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type MessageService struct {
	repo     ports.MessageRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, users ports.UserRepository, notifier ports.Notifier, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, users: users, notifier: notifier, log: log}
}

func (s *MessageService) Send(ctx context.Context, actor *domain.User, recipientID, body string) (*domain.Message, error) {
	if body == "" || recipientID == "" || recipientID == actor.ID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:    actor.ID,
		RecipientID: recipientID,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		RecipientID: recipientID,
		ActorID:     actor.ID,
		Kind:        domain.NotifyMessage,
		Text:        fmt.Sprintf("new message from %s", actor.Name),
	})

	return created, nil
}

func (s *MessageService) Conversation(ctx context.Context, actor *domain.User, otherID string) ([]*domain.Message, error) {
	if otherID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.Conversation(ctx, actor.ID, otherID)
}

func (s *MessageService) MarkRead(ctx context.Context, actor *domain.User, id string) error {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if msg.RecipientID != actor.ID {
		return domain.ErrForbidden
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, actor *domain.User, id string) error {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(msg.SenderID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
