package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/helaluddin100/greenbuild/internal/token"
)

type Middleware struct {
	Tokens *token.Service
}

func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		userID, role, err := m.Tokens.Validate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		setUserContext(c, userID, role, raw)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func setUserContext(c echo.Context, userID uint, role, raw string) {
	c.Set("userID", userID)
	c.Set("role", role)
	c.Set("token", raw)
}
