package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helaluddin100/greenbuild/internal/models"
)

func (env *testEnv) recordSale(designerID uint, price float64, quantity uint) {
	env.T.Helper()

	design := env.createDesign(designerID, price, price)
	order := models.Order{Number: fmt.Sprintf("ord-%d", userSeq(env.DB)), UserID: 1, Total: price * float64(quantity), Status: "new"}
	require.NoError(env.T, env.DB.Create(&order).Error)
	require.NoError(env.T, env.DB.Create(&models.OrderItem{
		OrderID:   order.ID,
		DesignID:  design.ID,
		UnitPrice: price,
		Quantity:  quantity,
	}).Error)
}

func TestCreateWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	designer := env.createUser(models.RoleDesigner)
	env.recordSale(designer.ID, 299, 2)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/designer/withdrawals", map[string]float64{
		"amount": 500,
	})
	asUser(c, designer)
	require.NoError(t, env.Withdrawal.CreateWithdrawal(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Withdrawal
	decodeData(t, rec, &resp)
	require.Equal(t, "pending", resp.Status)
	require.Equal(t, 500.0, resp.Amount)
}

func TestCreateWithdrawalInsufficientEarnings(t *testing.T) {
	env := newTestEnv(t)
	designer := env.createUser(models.RoleDesigner)
	env.recordSale(designer.ID, 299, 1)

	_, c := env.doJSONRequest(http.MethodPost, "/api/designer/withdrawals", map[string]float64{
		"amount": 300,
	})
	asUser(c, designer)
	requireHTTPError(t, env.Withdrawal.CreateWithdrawal(c), http.StatusUnprocessableEntity)
}

func TestPendingWithdrawalHoldsEarnings(t *testing.T) {
	env := newTestEnv(t)
	designer := env.createUser(models.RoleDesigner)
	env.recordSale(designer.ID, 299, 1)

	require.NoError(t, env.DB.Create(&models.Withdrawal{
		DesignerID: designer.ID,
		Amount:     200,
		Status:     "pending",
	}).Error)

	_, c := env.doJSONRequest(http.MethodPost, "/api/designer/withdrawals", map[string]float64{
		"amount": 150,
	})
	asUser(c, designer)
	requireHTTPError(t, env.Withdrawal.CreateWithdrawal(c), http.StatusUnprocessableEntity)
}

func TestRejectedWithdrawalReleasesEarnings(t *testing.T) {
	env := newTestEnv(t)
	designer := env.createUser(models.RoleDesigner)
	env.recordSale(designer.ID, 299, 1)

	require.NoError(t, env.DB.Create(&models.Withdrawal{
		DesignerID: designer.ID,
		Amount:     200,
		Status:     "rejected",
	}).Error)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/designer/withdrawals", map[string]float64{
		"amount": 250,
	})
	asUser(c, designer)
	require.NoError(t, env.Withdrawal.CreateWithdrawal(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestReviewWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	designer := env.createUser(models.RoleDesigner)
	admin := env.createUser(models.RoleAdmin)

	w := models.Withdrawal{DesignerID: designer.ID, Amount: 100, Status: "pending"}
	require.NoError(t, env.DB.Create(&w).Error)

	rec, c := env.doJSONRequest(http.MethodPatch, fmt.Sprintf("/api/admin/withdrawals/%d", w.ID), map[string]string{
		"status": "approved",
	})
	asUser(c, admin)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(w.ID))
	require.NoError(t, env.Withdrawal.ReviewWithdrawal(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Withdrawal
	decodeData(t, rec, &resp)
	require.Equal(t, "approved", resp.Status)

	// A second review is rejected.
	_, c = env.doJSONRequest(http.MethodPatch, fmt.Sprintf("/api/admin/withdrawals/%d", w.ID), map[string]string{
		"status": "rejected",
	})
	asUser(c, admin)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(w.ID))
	requireHTTPError(t, env.Withdrawal.ReviewWithdrawal(c), http.StatusUnprocessableEntity)
}
