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
)

type CartHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

// cartLine is the wire shape the frontend cart store consumes: the cart row
// joined with the design it references, unit prices in USD.
type cartLine struct {
	DesignID          uint    `json:"design_id"`
	Title             string  `json:"title"`
	PlanNumber        string  `json:"plan_number"`
	VariantLabel      string  `json:"variant_label"`
	UnitPrice         float64 `json:"unit_price"`
	OriginalUnitPrice float64 `json:"original_unit_price"`
	Quantity          uint    `json:"quantity"`
}

func (h *CartHandler) loadLines(userID uint) ([]cartLine, error) {
	var lines []cartLine
	err := h.DB.Model(&models.CartItem{}).
		Select(`cart_items.design_id, designs.title, designs.plan_number, designs.variant_label,
			designs.price AS unit_price, designs.original_price AS original_unit_price, cart_items.quantity`).
		Joins("JOIN designs ON designs.id = cart_items.design_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&lines).Error
	return lines, err
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	lines, err := h.loadLines(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if lines == nil {
		lines = []cartLine{}
	}

	return dataJSON(c, http.StatusOK, lines)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		DesignID uint `json:"design_id"`
		Quantity uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var design models.Design
	if err := h.DB.First(&design, req.DesignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "design not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var item models.CartItem
	tx := h.DB.Where("user_id = ? AND design_id = ?", userID, req.DesignID).First(&item)
	switch {
	case tx.Error == nil:
		item.Quantity += req.Quantity
		if err := h.DB.Save(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	case errors.Is(tx.Error, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:   userID,
			DesignID: req.DesignID,
			Quantity: req.Quantity,
		}
		if err := h.DB.Create(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, tx.Error.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(userID), map[string]interface{}{
		"type":     "cart_item_added",
		"userID":   userID,
		"designID": req.DesignID,
		"quantity": item.Quantity,
	})

	return dataJSON(c, http.StatusOK, item)
}

func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	designID, err := strconv.Atoi(c.Param("designID"))
	if err != nil || designID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid design id")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Quantity < 1 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "quantity must be at least 1")
	}

	var item models.CartItem
	if err := h.DB.Where("user_id = ? AND design_id = ?", userID, designID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	item.Quantity = uint(req.Quantity)
	if err := h.DB.Save(&item).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(userID), map[string]interface{}{
		"type":     "cart_item_updated",
		"userID":   userID,
		"designID": designID,
		"quantity": item.Quantity,
	})

	return dataJSON(c, http.StatusOK, item)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	designID, err := strconv.Atoi(c.Param("designID"))
	if err != nil || designID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid design id")
	}

	if err := h.DB.
		Where("user_id = ? AND design_id = ?", userID, designID).
		Delete(&models.CartItem{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(userID), map[string]interface{}{
		"type":     "cart_item_removed",
		"userID":   userID,
		"designID": designID,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	if err := h.DB.
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(userID), map[string]interface{}{
		"type":   "cart_cleared",
		"userID": userID,
	})

	return c.NoContent(http.StatusNoContent)
}
