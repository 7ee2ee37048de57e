package http

import (
	"net/http"

	"offbeat-travels/internal/infrastructure/session"

	"github.com/labstack/echo/v4"
)

const sessionCookie = "session_token"

// sessionKey is the echo context key the middleware stores the
// session under.
const sessionKey = "authSession"

// requireSession resolves the session cookie and stores the session
// in the request context. Handlers derive identity (and therefore the
// shard) from this session, never from ids the client submits.
func (h *Handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "login required")
		}

		sess := h.sessions.Get(cookie.Value)
		if sess == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
		}

		c.Set(sessionKey, sess)
		return next(c)
	}
}

// currentSession returns the session stored by requireSession.
func currentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionKey).(*session.Session)
	return sess
}
