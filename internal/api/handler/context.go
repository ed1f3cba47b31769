package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

// ctxSession extracts the session attached by the Session middleware.
// The identity is informational only; it carries no authorization scope.
func ctxSession(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get("session").(*domain.Session)
	return session, ok
}

// ctxToken extracts the raw session token attached by the Session middleware.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("session_token").(string)
	return token
}
