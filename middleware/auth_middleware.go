package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"whey/config"
	"whey/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "whey_session"

var (
	errMissingToken  = errors.New("missing session token")
	errInvalidToken  = errors.New("invalid session token")
	errInvalidClaims = errors.New("invalid session claims")
)

// SessionClaims are the JWT claims carried by the viewer session token.
type SessionClaims struct {
	Email string `json:"email"`
	Sid   string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the viewer session token into a domain.UserContext.
type AuthMiddleware struct {
	logger *slog.Logger
	secret []byte
}

func NewAuthMiddleware(logger *slog.Logger, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		logger: logger,
		secret: []byte(cfg.Auth.JWTSecret),
	}
}

// AttachViewer parses the session token when present and attaches the viewer
// to the request context. Anonymous requests pass through untouched: read
// paths work without a session, favorites simply render false.
func (m *AuthMiddleware) AttachViewer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.resolveViewer(c)
			if err != nil {
				if !errors.Is(err, errMissingToken) && m.logger != nil {
					m.logger.Warn("session token rejected", "error", err, "path", c.Request().URL.Path)
				}
				return next(c)
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401. Mutation endpoints use it
// on top of AttachViewer.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := domain.GetUserFromContext(c.Request().Context()); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolveViewer(c echo.Context) (*domain.UserContext, error) {
	raw := bearerToken(c)
	if raw == "" {
		if cookie, err := c.Cookie(sessionCookieName); err == nil {
			raw = cookie.Value
		}
	}
	if raw == "" {
		return nil, errMissingToken
	}

	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Subject == "" {
		return nil, errInvalidClaims
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errInvalidClaims
	}

	expiresAt := time.Now().Add(time.Minute)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &domain.UserContext{
		UserID:    userID,
		Email:     claims.Email,
		SessionID: claims.Sid,
		ExpiresAt: expiresAt,
	}, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
