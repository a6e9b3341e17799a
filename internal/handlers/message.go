package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	"github.com/helaluddin100/greenbuild/internal/models"
)

type MessageHandler struct {
	DB *gorm.DB
}

// CreateMessage is the public "contact the designer" form; no login required.
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req struct {
		DesignerID  uint   `json:"designer_id"`
		SenderName  string `json:"sender_name"`
		SenderEmail string `json:"sender_email"`
		Body        string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SenderEmail == "" || req.Body == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "sender_email and body are required")
	}

	var designer models.User
	if err := h.DB.First(&designer, req.DesignerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "designer not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if designer.Role != models.RoleDesigner {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "recipient is not a designer")
	}

	msg := models.Message{
		DesignerID:  req.DesignerID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Body:        req.Body,
	}
	if err := h.DB.Create(&msg).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusCreated, msg)
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	designerID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var msgs []models.Message
	if err := h.DB.Where("designer_id = ?", designerID).Order("id DESC").Find(&msgs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusOK, msgs)
}
