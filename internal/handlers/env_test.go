package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/helaluddin100/greenbuild/internal/config"
	"github.com/helaluddin100/greenbuild/internal/hash"
	"github.com/helaluddin100/greenbuild/internal/models"
	"github.com/helaluddin100/greenbuild/internal/token"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *token.Service

	Auth       *AuthHandler
	Design     *DesignHandler
	Cart       *CartHandler
	Order      *OrderHandler
	Review     *ReviewHandler
	Community  *CommunityHandler
	Message    *MessageHandler
	Withdrawal *WithdrawalHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	tokens := &token.Service{DB: db, Secret: []byte("test_secret")}

	env := &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     db,
		Tokens: tokens,

		Auth:       &AuthHandler{DB: db, Tokens: tokens},
		Design:     &DesignHandler{DB: db},
		Cart:       &CartHandler{DB: db},
		Order:      &OrderHandler{DB: db},
		Review:     &ReviewHandler{DB: db},
		Community:  &CommunityHandler{DB: db},
		Message:    &MessageHandler{DB: db},
		Withdrawal: &WithdrawalHandler{DB: db},
	}

	return env
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// asUser primes the echo context the way the auth middleware would.
func asUser(c echo.Context, user *models.User) {
	c.Set("userID", user.ID)
	c.Set("role", user.Role)
}

func (env *testEnv) createUser(role string) *models.User {
	env.T.Helper()

	passwordHash, err := hash.HashPassword("password")
	require.NoError(env.T, err)

	user := models.User{
		Name:         "Test " + role,
		Email:        fmt.Sprintf("%s_%d@example.com", role, userSeq(env.DB)),
		PasswordHash: passwordHash,
		Role:         role,
	}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return &user
}

func userSeq(db *gorm.DB) int64 {
	var n int64
	db.Model(&models.User{}).Count(&n)
	return n
}

func (env *testEnv) createDesign(designerID uint, price, original float64) *models.Design {
	env.T.Helper()

	design := models.Design{
		DesignerID:    designerID,
		Title:         "Solar Courtyard House",
		Description:   "Passive solar layout with rainwater catchment",
		PlanNumber:    fmt.Sprintf("GB-%d", userSeq(env.DB)+100),
		VariantLabel:  "3 bed",
		Price:         price,
		OriginalPrice: original,
	}
	require.NoError(env.T, env.DB.Create(&design).Error)
	return &design
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
