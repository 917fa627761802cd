package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// UpdateProfileInput carries the user-mutable fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Name           *string
	Email          *string
	Location       *string
	Bio            *string
	ProfilePicture *string
	EmailUpdates   *bool
	PublicProfile  *bool
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile requires actor to own the record or be an admin.
	UpdateProfile(ctx context.Context, actor *domain.User, id string, in UpdateProfileInput) (*domain.User, error)
	// Delete requires actor to own the record or be an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
