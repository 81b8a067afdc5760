package context

import (
	"wellness/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeySession holds the *usecase.Session attached by the session guard.
const KeySession ContextKey = "session"

// SetSession attaches the authenticated session to the request.
func SetSession(c echo.Context, session *usecase.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the authenticated session, if any.
func GetSession(c echo.Context) (*usecase.Session, bool) {
	session, ok := echoValueOf[*usecase.Session](c, KeySession)

	return session, ok && session != nil
}

// GetUserID returns the authenticated user's ID or "".
func GetUserID(c echo.Context) string {
	if session, ok := GetSession(c); ok {
		return session.Identity.UserID
	}

	return ""
}
