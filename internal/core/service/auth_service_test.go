package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

func newTestAuthService(repo *memUserRepo, throttle LoginThrottle) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop())
}

func registerFounder(t *testing.T, svc *AuthService, email string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    email,
		Password: "hunter2-hunter2",
		Role:     domain.RoleFounder,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, nil)

	user := registerFounder(t, svc, "alice@example.com")

	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleFounder {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.PasswordHash == "hunter2-hunter2" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2-hunter2")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.EmailUpdates || !user.PublicProfile {
		t.Fatalf("expected notification settings to default on")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo(), nil)

	cases := []ports.RegisterInput{
		{Email: "a@b.c", Password: "pw", Role: domain.RoleFounder},               // no name
		{Name: "A", Password: "pw", Role: domain.RoleFounder},                    // no email
		{Name: "A", Email: "a@b.c", Role: domain.RoleFounder},                    // no password
		{Name: "A", Email: "a@b.c", Password: "pw", Role: "superuser"},           // bad role
		{Name: "A", Email: "a@b.c", Password: "pw"},                              // no role
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, nil)

	registerFounder(t, svc, "alice@example.com")

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Imposter",
		Email:    "alice@example.com",
		Password: "different-pw",
		Role:     domain.RoleInvestor,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newMemUserRepo()
	throttle := newMemThrottle(5)
	svc := newTestAuthService(repo, throttle)
	registerFounder(t, svc, "alice@example.com")

	token, user, err := svc.Login(context.Background(), "alice@example.com", "hunter2-hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked in login response")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	throttle := newMemThrottle(5)
	svc := newTestAuthService(repo, throttle)
	registerFounder(t, svc, "alice@example.com")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures["alice@example.com"] != 1 {
		t.Fatalf("expected failure to be recorded")
	}
}

// Login with an unknown email must fail the same way as a wrong password,
// so the response does not reveal whether an account exists.
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo(), nil)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newMemUserRepo()
	throttle := newMemThrottle(3)
	svc := newTestAuthService(repo, throttle)
	registerFounder(t, svc, "alice@example.com")

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Correct password, but the window limit has been hit.
	_, _, err := svc.Login(context.Background(), "alice@example.com", "hunter2-hunter2")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsThrottle(t *testing.T) {
	repo := newMemUserRepo()
	throttle := newMemThrottle(3)
	svc := newTestAuthService(repo, throttle)
	registerFounder(t, svc, "alice@example.com")

	_, _, _ = svc.Login(context.Background(), "alice@example.com", "wrong")
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "hunter2-hunter2"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if throttle.failures["alice@example.com"] != 0 {
		t.Fatalf("expected throttle to be reset after success")
	}
}

func TestAuthService_ChangePassword_Self(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, nil)
	user := registerFounder(t, svc, "alice@example.com")

	if err := svc.ChangePassword(context.Background(), user, user.ID, "hunter2-hunter2", "new-password-1"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "new-password-1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, nil)
	user := registerFounder(t, svc, "alice@example.com")

	err := svc.ChangePassword(context.Background(), user, user.ID, "not-my-password", "new-password-1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword_OtherUserForbidden(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, nil)
	alice := registerFounder(t, svc, "alice@example.com")
	bob := repo.add(&domain.User{ID: "bob", Email: "bob@example.com", Role: domain.RoleInvestor})

	err := svc.ChangePassword(context.Background(), alice, bob.ID, "", "new-password-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// Admins can reset another account's password without knowing the current one.
func TestAuthService_ChangePassword_AdminReset(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, nil)
	user := registerFounder(t, svc, "alice@example.com")
	admin := repo.add(&domain.User{ID: "admin", Email: "root@example.com", Role: domain.RoleAdmin})

	if err := svc.ChangePassword(context.Background(), admin, user.ID, "", "reset-by-admin"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "reset-by-admin"); err != nil {
		t.Fatalf("login with reset password failed: %v", err)
	}
}
