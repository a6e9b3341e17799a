package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	"github.com/helaluddin100/greenbuild/internal/models"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	designID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Rating uint   `json:"rating"`
		Body   string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "rating must be between 1 and 5")
	}

	var design models.Design
	if err := h.DB.First(&design, designID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "design not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	review := models.Review{
		DesignID: uint(designID),
		UserID:   userID,
		Rating:   req.Rating,
		Body:     req.Body,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	designID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var reviews []models.Review
	if err := h.DB.Where("design_id = ?", designID).Order("id DESC").Find(&reviews).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusOK, reviews)
}
