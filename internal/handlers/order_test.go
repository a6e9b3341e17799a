package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helaluddin100/greenbuild/internal/models"
)

func TestCreateOrderFromCart(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.createUser(models.RoleBuyer)
	designer := env.createUser(models.RoleDesigner)
	first := env.createDesign(designer.ID, 299, 399)
	second := env.createDesign(designer.ID, 449, 549)

	require.NoError(t, env.DB.Create(&models.CartItem{UserID: buyer.ID, DesignID: first.ID, Quantity: 1}).Error)
	require.NoError(t, env.DB.Create(&models.CartItem{UserID: buyer.ID, DesignID: second.ID, Quantity: 2}).Error)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/orders", nil)
	asUser(c, buyer)
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp orderResponse
	decodeData(t, rec, &resp)
	require.NotEmpty(t, resp.Number)
	require.Equal(t, "new", resp.Status)
	require.Equal(t, 299.0+449.0*2, resp.Total)
	require.Len(t, resp.Items, 2)
	require.Equal(t, 299.0, resp.Items[0].UnitPrice)
	require.Equal(t, uint(2), resp.Items[1].Quantity)

	// Checkout drains the cart.
	var count int64
	env.DB.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&count)
	require.Zero(t, count)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.createUser(models.RoleBuyer)

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", nil)
	asUser(c, buyer)
	requireHTTPError(t, env.Order.CreateOrder(c), http.StatusUnprocessableEntity)
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.createUser(models.RoleBuyer)
	designer := env.createUser(models.RoleDesigner)
	design := env.createDesign(designer.ID, 299, 399)

	require.NoError(t, env.DB.Create(&models.CartItem{UserID: buyer.ID, DesignID: design.ID, Quantity: 1}).Error)

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", nil)
	asUser(c, buyer)
	require.NoError(t, env.Order.CreateOrder(c))

	design.Price = 999
	require.NoError(t, env.DB.Save(design).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/orders", nil)
	asUser(c, buyer)
	require.NoError(t, env.Order.ListOrders(c))

	var resp []orderResponse
	decodeData(t, rec, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, 299.0, resp[0].Items[0].UnitPrice)
	require.Equal(t, 299.0, resp[0].Total)
}
