package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

type stubTokenService struct {
	subject string
	err     error
}

func (s *stubTokenService) Issue(userID string) (string, error) {
	return "token-for-" + userID, nil
}

func (s *stubTokenService) Verify(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.subject, nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }

func (r *stubUserRepo) UpdatePassword(_ context.Context, _, _ string) error { return nil }

func (r *stubUserRepo) Delete(_ context.Context, _ string) error { return nil }

func authAssertStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d", want, httpErr.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	alice := &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleFounder}
	tokens := &stubTokenService{subject: "u1"}
	repo := &stubUserRepo{users: map[string]*domain.User{"u1": alice}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(IdentityKey).(*domain.User)
		if !ok || user == nil {
			t.Fatalf("identity not set")
		}
		if user.ID != "u1" {
			t.Fatalf("wrong identity: %s", user.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(&stubTokenService{subject: "u1"}, &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	authAssertStatus(t, handler(c), http.StatusUnauthorized)
}

func TestAuth_BadScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(&stubTokenService{subject: "u1"}, &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	authAssertStatus(t, handler(c), http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	c := e.NewContext(req, httptest.NewRecorder())

	tokens := &stubTokenService{err: domain.ErrInvalidCredentials}
	handler := Auth(tokens, &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	authAssertStatus(t, handler(c), http.StatusUnauthorized)
}

// A token whose subject was deleted after issuance must be rejected, not
// resolved to an empty identity.
func TestAuth_DeletedUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	c := e.NewContext(req, httptest.NewRecorder())

	tokens := &stubTokenService{subject: "gone"}
	handler := Auth(tokens, &stubUserRepo{users: map[string]*domain.User{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	authAssertStatus(t, handler(c), http.StatusUnauthorized)
}
