package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// PostRegister creates an account. The username's home shard is fixed
// here and never changes afterwards.
func (h *Handler) PostRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.httpError(c, "register", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"home_shard": user.HomeShard,
	})
}

// PostLogin verifies credentials and sets the session cookie.
func (h *Handler) PostLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.httpError(c, "login", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"username": sess.Username,
	})
}

// PostLogout destroys the session, if any.
func (h *Handler) PostLogout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		h.auth.Logout(cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}
