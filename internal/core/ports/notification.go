package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// NotificationInput is the DTO enqueued by services when something notable
// happens to a recipient.
type NotificationInput struct {
	RecipientID string
	ActorID     string
	Kind        string
	Text        string
	PitchID     string
}

// Notifier is the write side used by services. Implemented by the queue
// dispatcher; delivery is asynchronous and best-effort.
type Notifier interface {
	Notify(in NotificationInput)
}

type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type NotificationService interface {
	ListForActor(ctx context.Context, actor *domain.User) ([]*domain.Notification, error)
	// MarkRead and Delete require the recipient (or an admin, for Delete).
	MarkRead(ctx context.Context, actor *domain.User, id string) error
	Delete(ctx context.Context, actor *domain.User, id string) error
}
