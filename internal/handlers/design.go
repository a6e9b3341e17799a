package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/helaluddin100/greenbuild/internal/events"
	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	"github.com/helaluddin100/greenbuild/internal/models"
	"github.com/helaluddin100/greenbuild/internal/util"
)

type DesignHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *DesignHandler) ListDesigns(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.Model(&models.Design{}).Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var items []models.Design
	if err := h.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return pagedJSON(c, items, page, limit, total)
}

func (h *DesignHandler) GetDesign(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var design models.Design
	if err := h.DB.First(&design, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "design not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusOK, design)
}

type designRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	PlanNumber    string  `json:"plan_number"`
	VariantLabel  string  `json:"variant_label"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
}

func (r *designRequest) validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Price <= 0 {
		return errors.New("price must be positive")
	}
	if r.OriginalPrice == 0 {
		r.OriginalPrice = r.Price
	}
	if r.Price > r.OriginalPrice {
		return errors.New("price cannot exceed original price")
	}
	return nil
}

func (h *DesignHandler) CreateDesign(c echo.Context) error {
	designerID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var req designRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	design := models.Design{
		DesignerID:    designerID,
		Title:         req.Title,
		Description:   req.Description,
		PlanNumber:    req.PlanNumber,
		VariantLabel:  req.VariantLabel,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
	}
	if err := h.DB.Create(&design).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicDesignEvents, fmt.Sprint(design.ID), map[string]interface{}{
		"type":     "design_created",
		"designID": design.ID,
		"title":    design.Title,
	})

	return dataJSON(c, http.StatusCreated, design)
}

func (h *DesignHandler) UpdateDesign(c echo.Context) error {
	designerID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var design models.Design
	if err := h.DB.First(&design, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "design not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if design.DesignerID != designerID {
		return echo.NewHTTPError(http.StatusForbidden, "not your design")
	}

	var req designRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	design.Title = req.Title
	design.Description = req.Description
	design.PlanNumber = req.PlanNumber
	design.VariantLabel = req.VariantLabel
	design.Price = req.Price
	design.OriginalPrice = req.OriginalPrice

	if err := h.DB.Save(&design).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicDesignEvents, fmt.Sprint(design.ID), map[string]interface{}{
		"type":     "design_updated",
		"designID": design.ID,
		"title":    design.Title,
	})

	return dataJSON(c, http.StatusOK, design)
}

func (h *DesignHandler) DeleteDesign(c echo.Context) error {
	designerID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var design models.Design
	if err := h.DB.First(&design, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "design not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if design.DesignerID != designerID && authmw.Role(c) != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "not your design")
	}

	if err := h.DB.Delete(&models.Design{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicDesignEvents, fmt.Sprint(id), map[string]interface{}{
		"type":     "design_deleted",
		"designID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
