package middleware

import (
	"net/http"
	"strings"

	"erp-service/internal/authz"
	"erp-service/pkg/jwtutil"
	"erp-service/pkg/logger"
	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const sessionKey = "session"

// JWTAuthMiddleware validates the bearer token and places the session in the
// request context. A missing or malformed header is 401; a token that fails
// validation (bad signature, expired) is 403.
func JWTAuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			// Check if it's a Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Warn("Invalid Authorization header format")
				prometheus.RecordAuthError("invalid_auth_format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			// Validate the token
			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid or expired token"})
			}

			session := &authz.Session{
				UserID:   claims.UserID,
				TenantID: claims.TenantID,
				Email:    claims.Email,
				Role:     claims.Role,
			}
			c.Set(sessionKey, session)

			log.Debug("Request authenticated",
				zap.Uint("user_id", session.UserID),
				zap.String("role", session.Role))

			return next(c)
		}
	}
}

// SessionFromContext retrieves the validated session placed by
// JWTAuthMiddleware. Returns nil when the middleware has not run.
func SessionFromContext(c echo.Context) *authz.Session {
	session, ok := c.Get(sessionKey).(*authz.Session)
	if !ok {
		return nil
	}
	return session
}

// SetSession places a session in the context. Exposed for handler tests.
func SetSession(c echo.Context, session *authz.Session) {
	c.Set(sessionKey, session)
}
