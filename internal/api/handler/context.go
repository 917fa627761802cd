package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/api/middleware"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// ctxIdentity extracts the user resolved by the Auth middleware and
// fast-fails before any service call. A missing or empty identity is
// treated as unauthenticated, never trusted: the guard resolves deleted
// accounts to nothing, and handlers must not act on a hollow user.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.IdentityKey).(*domain.User)
	if user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
