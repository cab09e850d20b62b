package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/loanhub/internal/pkg/jwt"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/pkg/requestcontext"
	"github.com/piresc/loanhub/internal/utils"
)

const identityKey = "identity"

// Authorize authenticates the bearer token and checks the caller's role against policy.
// It must be attached where echo has already resolved the route, so c.Path() is the template.
func Authorize(policy Policy, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method, path := c.Request().Method, c.Path()
			if _, listed := policy[Key(method, path)]; !listed && !hasRoute(c.Echo(), method, path) {
				// group catch-all, echo answers 404 or 405
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
			token = strings.TrimSpace(token)
			if authHeader == "" || token == "" {
				return utils.UnauthorizedResponse(c, "No token provided")
			}
			if !strings.EqualFold(scheme, "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			identity, err := jwtpkg.ValidateToken(token, secret)
			if err != nil {
				logger.Debug("Rejected bearer token",
					logger.String("path", path),
					logger.ErrorField(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if !policy.Permits(method, path, identity.Role) {
				logger.Warn("Role not permitted",
					logger.String("method", method),
					logger.String("path", path),
					logger.String("role", string(identity.Role)),
					logger.String("user_id", identity.UserID.String()))
				return utils.ForbiddenResponse(c, "Access denied")
			}

			c.Set(identityKey, *identity)
			c.Set("user_id", identity.UserID.String())
			c.Set("role", string(identity.Role))
			SetUserID(c, identity.UserID.String())
			c.SetRequest(c.Request().WithContext(requestcontext.WithIdentity(c.Request().Context(), *identity)))

			return next(c)
		}
	}
}

// hasRoute reports whether a handler is registered for method on the route template
func hasRoute(e *echo.Echo, method, path string) bool {
	if e == nil {
		return true
	}
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

// IdentityFrom returns the caller attached by Authorize
func IdentityFrom(c echo.Context) (models.Identity, bool) {
	identity, ok := c.Get(identityKey).(models.Identity)
	return identity, ok
}

// WithIdentity attaches identity to c the way Authorize does. Used by handler tests.
func WithIdentity(c echo.Context, identity models.Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.UserID.String())
	c.Set("role", string(identity.Role))
}
