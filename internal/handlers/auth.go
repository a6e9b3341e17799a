package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/helaluddin100/greenbuild/internal/events"
	"github.com/helaluddin100/greenbuild/internal/hash"
	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	"github.com/helaluddin100/greenbuild/internal/models"
	"github.com/helaluddin100/greenbuild/internal/token"
)

type AuthHandler struct {
	DB       *gorm.DB
	Tokens   *token.Service
	Producer *events.Producer
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "email and password are required")
	}

	role := models.RoleBuyer
	if req.Role == models.RoleDesigner {
		role = models.RoleDesigner
	}

	var existing models.User
	result := h.DB.Where("email=?", req.Email).First(&existing)
	if result.Error == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "email already taken")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, result.Error.Error())
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	raw, err := h.Tokens.Issue(&user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
		"role":   user.Role,
	})

	return dataJSON(c, http.StatusCreated, echo.Map{
		"token": raw,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var user models.User
	if err := h.DB.Where("email=?", req.Email).First(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	raw, err := h.Tokens.Issue(&user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	return dataJSON(c, http.StatusOK, echo.Map{
		"token": raw,
		"user":  user,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.Tokens.Revoke(authmw.RawToken(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return dataJSON(c, http.StatusOK, echo.Map{"message": "logged out"})
}

// Me backs the session-restore flow: a valid bearer token returns the
// current user, anything else 401s so the client clears its storage.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
	}
	return dataJSON(c, http.StatusOK, user)
}
