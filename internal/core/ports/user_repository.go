package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// FindByEmail loads the full record including the password hash (login path).
// Every other read excludes the hash at the projection level.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update persists the mutable profile and settings fields.
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
