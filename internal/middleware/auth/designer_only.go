package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helaluddin100/greenbuild/internal/models"
)

func (m *Middleware) DesignerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireLogin(func(c echo.Context) error {
		if Role(c) != models.RoleDesigner {
			return echo.NewHTTPError(http.StatusForbidden, "designer account required")
		}
		return next(c)
	})
}

func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireLogin(func(c echo.Context) error {
		if Role(c) != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin account required")
		}
		return next(c)
	})
}
