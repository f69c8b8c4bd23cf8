package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/session"
	"github.com/shahhardik4599/creatively-yours/pkg/logger"
	"github.com/shahhardik4599/creatively-yours/pkg/sessiontoken"
)

const sessionContextKey = "session"

// SessionTokenHeader carries a freshly minted guest token back to the
// client whenever a request arrived without a usable one
const SessionTokenHeader = "X-Session-Token"

// SessionMiddleware attaches a guest session to the request. A valid
// bearer token naming a live session reuses it; anything else (no token,
// expired token, evicted session) transparently starts a new session and
// returns its token in the response header. There is no user identity and
// nothing to reject: every request gets a session.
func SessionMiddleware(registry *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			if sid, ok := bearerSessionID(c); ok {
				if s, live := registry.Get(sid); live {
					c.Set(sessionContextKey, s)
					return next(c)
				}
				log.Info("session token named a dead session", zap.String("session_id", sid))
			}

			// Start a fresh session and hand its token back
			s := registry.Create()
			token, err := sessiontoken.Mint(s.ID)
			if err != nil {
				log.Error("failed to mint session token", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start session"})
			}

			c.Response().Header().Set(SessionTokenHeader, token)
			c.Set(sessionContextKey, s)
			log.Info("started guest session", zap.String("session_id", s.ID))
			return next(c)
		}
	}
}

// SessionFromContext retrieves the guest session attached by SessionMiddleware
func SessionFromContext(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(sessionContextKey).(*session.Session)
	return s, ok
}

func bearerSessionID(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	claims, err := sessiontoken.Validate(parts[1])
	if err != nil {
		return "", false
	}
	return claims.SessionID, true
}
