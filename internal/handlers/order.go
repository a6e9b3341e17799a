package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/helaluddin100/greenbuild/internal/events"
	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	"github.com/helaluddin100/greenbuild/internal/models"
)

type OrderHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

type orderResponse struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

// CreateOrder snapshots the cart into an order. Unit prices are copied onto
// the order items so later design price edits do not rewrite history.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var cart []models.CartItem
	if err := h.DB.Where("user_id = ?", userID).Order("id ASC").Find(&cart).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(cart) == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "cart is empty")
	}

	order := models.Order{
		Number: uuid.NewString(),
		UserID: userID,
		Status: "new",
	}
	var items []models.OrderItem

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, ci := range cart {
			var design models.Design
			if err := tx.First(&design, ci.DesignID).Error; err != nil {
				return fmt.Errorf("design %d: %w", ci.DesignID, err)
			}
			items = append(items, models.OrderItem{
				DesignID:   design.ID,
				Title:      design.Title,
				PlanNumber: design.PlanNumber,
				UnitPrice:  design.Price,
				Quantity:   ci.Quantity,
			})
			total += design.Price * float64(ci.Quantity)
		}
		order.Total = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicOrderEvents, fmt.Sprint(userID), map[string]interface{}{
		"type":    "order_created",
		"userID":  userID,
		"orderID": order.ID,
		"number":  order.Number,
		"total":   order.Total,
	})

	return dataJSON(c, http.StatusCreated, orderResponse{Order: order, Items: items})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var orders []models.Order
	if err := h.DB.Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		var items []models.OrderItem
		if err := h.DB.Where("order_id = ?", o.ID).Find(&items).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resp = append(resp, orderResponse{Order: o, Items: items})
	}

	return dataJSON(c, http.StatusOK, resp)
}
