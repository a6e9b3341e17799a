package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get("userID").(uint)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return id, nil
}

func Role(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

func RawToken(c echo.Context) string {
	raw, _ := c.Get("token").(string)
	return raw
}
