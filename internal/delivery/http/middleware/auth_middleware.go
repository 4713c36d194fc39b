package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cookbook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key under which the verified subject
// id is stored for handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token on the request. Every failure mode
// (missing header, malformed token, bad signature, expiry) produces the same
// generic 401 so callers cannot tell which check failed; the specific cause
// is logged server-side only.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return m.reject(c, "missing Authorization header", nil)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c, "Authorization header is not a bearer token", nil)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.reject(c, "token verification failed", err)
		}

		// Set the verified subject on the context for handlers to use.
		c.Set(ContextKeyUserID, claims.SubjectID)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string, err error) error {
	attrs := []any{
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	m.logger.Warn("Unauthenticated request", attrs...)

	return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unauthenticated"})
}
