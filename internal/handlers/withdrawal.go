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

type WithdrawalHandler struct {
	DB *gorm.DB
}

// earnings sums what the designer has sold, minus withdrawals that are
// pending or already paid out. Rejected requests release their amount.
func (h *WithdrawalHandler) earnings(designerID uint) (float64, error) {
	var sold float64
	err := h.DB.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(order_items.unit_price * order_items.quantity), 0)").
		Joins("JOIN designs ON designs.id = order_items.design_id").
		Where("designs.designer_id = ?", designerID).
		Scan(&sold).Error
	if err != nil {
		return 0, err
	}

	var held float64
	err = h.DB.Model(&models.Withdrawal{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("designer_id = ? AND status <> ?", designerID, "rejected").
		Scan(&held).Error
	if err != nil {
		return 0, err
	}

	return sold - held, nil
}

func (h *WithdrawalHandler) CreateWithdrawal(c echo.Context) error {
	designerID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "amount must be positive")
	}

	available, err := h.earnings(designerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if req.Amount > available {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "insufficient earnings")
	}

	w := models.Withdrawal{
		DesignerID: designerID,
		Amount:     req.Amount,
		Status:     "pending",
	}
	if err := h.DB.Create(&w).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusCreated, w)
}

func (h *WithdrawalHandler) ListWithdrawals(c echo.Context) error {
	designerID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var ws []models.Withdrawal
	if err := h.DB.Where("designer_id = ?", designerID).Order("id DESC").Find(&ws).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusOK, ws)
}

func (h *WithdrawalHandler) ReviewWithdrawal(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status != "approved" && req.Status != "rejected" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status must be approved or rejected")
	}

	var w models.Withdrawal
	if err := h.DB.First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "withdrawal not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if w.Status != "pending" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "withdrawal already reviewed")
	}

	w.Status = req.Status
	if err := h.DB.Save(&w).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusOK, w)
}
