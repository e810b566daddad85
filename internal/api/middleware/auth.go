package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

// ContextUserKey is the echo context key under which Auth stores the
// authenticated *domain.User.
const ContextUserKey = "auth_user"

// Auth validates the bearer token and re-resolves the identity against the
// credential store on every request, so deactivation or deletion takes
// effect immediately even though tokens are stateless. The fresh user, not
// the token's snapshot, is what ends up in the context.
func Auth(verifier ports.TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired, please log in again")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}
			if !user.Active {
				return echo.NewHTTPError(http.StatusForbidden, "user inactive, contact an administrator")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user attached by Auth. The boolean
// is false when the middleware did not run for this route.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(ContextUserKey).(*domain.User)
	return user, ok
}
