package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Location string
	Bio      string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the account on success.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ChangePassword re-verifies the current password before setting a new one.
	ChangePassword(ctx context.Context, actor *domain.User, userID, current, next string) error
}
