package ports

import (
	"context"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// Repositories and services for the lightweight engagement records
// (meetings, messages, ratings, comments). Each is a timestamped record
// created by one party and read by the referenced parties.

type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	FindByID(ctx context.Context, id string) (*domain.Meeting, error)
	// ListForUser returns meetings where the user is organizer or attendee.
	ListForUser(ctx context.Context, userID string) ([]*domain.Meeting, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// Conversation returns all messages exchanged between two users, oldest first.
	Conversation(ctx context.Context, userA, userB string) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type RatingRepository interface {
	Create(ctx context.Context, r *domain.Rating) (*domain.Rating, error)
	FindByID(ctx context.Context, id string) (*domain.Rating, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.Rating, error)
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByStartup(ctx context.Context, startupID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleMeetingInput carries the fields for scheduling a meeting.
type ScheduleMeetingInput struct {
	AttendeeID  string
	PitchID     string
	Title       string
	ScheduledAt time.Time
	MeetingLink string
	Notes       string
}

type MeetingService interface {
	Schedule(ctx context.Context, actor *domain.User, in ScheduleMeetingInput) (*domain.Meeting, error)
	ListForActor(ctx context.Context, actor *domain.User) ([]*domain.Meeting, error)
	// Cancel requires the organizer or an admin.
	Cancel(ctx context.Context, actor *domain.User, id string) error
}

type MessageService interface {
	Send(ctx context.Context, actor *domain.User, recipientID, body string) (*domain.Message, error)
	// Conversation returns the thread between the actor and otherID.
	Conversation(ctx context.Context, actor *domain.User, otherID string) ([]*domain.Message, error)
	// MarkRead requires the recipient.
	MarkRead(ctx context.Context, actor *domain.User, id string) error
	// Delete requires the sender or an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}

type RatingService interface {
	Rate(ctx context.Context, actor *domain.User, subjectID, startupID string, score int, comment string) (*domain.Rating, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.Rating, error)
	// Delete requires the rater or an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}

type CommentService interface {
	Post(ctx context.Context, actor *domain.User, startupID, body string) (*domain.Comment, error)
	ListByStartup(ctx context.Context, startupID string) ([]domain.CommentSummary, error)
	// Delete requires the author or an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
