package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bakery/api/authentication"
	"bakery/api/closingperiod"
	"bakery/api/health"
	"bakery/api/order"
	"bakery/api/product"
	"bakery/api/productordering"
	closingperiodapp "bakery/application/closingperiod"
	featureapp "bakery/application/feature"
	orderapp "bakery/application/order"
	productapp "bakery/application/product"
	"bakery/config"
	"bakery/domain/notification"
	domainorder "bakery/domain/order"
	domainproduct "bakery/domain/product"
	"bakery/domain/shared"
	"bakery/infrastructure/auth"
	"bakery/infrastructure/persistence/memory"
)

const adminPassword = "pain-au-levain"

type recordingNotifications struct {
	mu   sync.Mutex
	sent []notification.OrderNotification
}

func (r *recordingNotifications) Send(_ context.Context, n notification.OrderNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

type testServer struct {
	engine        *gin.Engine
	notifications *recordingNotifications
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{
		App:      config.AppConfig{Name: "bakery", Version: "test", Env: "test"},
		Database: config.DatabaseConfig{Type: "memory"},
		Auth:     config.AuthConfig{AdminUsername: "ADMIN", AdminPasswordHash: string(hash), JWTSecret: "secret", TokenTTL: time.Hour},
		CORS:     config.CORSConfig{AllowOrigins: []string{"*"}, AllowMethods: []string{"GET", "POST"}, MaxAge: 600},
		Metrics:  config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	orders := memory.NewOrderRepository()
	products := memory.NewProductRepository()
	closingPeriods := memory.NewClosingPeriodRepository()
	features := memory.NewFeatureRepository()
	notifications := &recordingNotifications{}

	baguette, err := domainproduct.NewFactory().Create(domainproduct.Command{Name: "Baguette", Price: decimal.RequireFromString("3.25")})
	require.NoError(t, err)
	_, err = products.Save(context.Background(), baguette)
	require.NoError(t, err)

	// Tuesday 2020-01-07, 10:00 in the business zone.
	clock := shared.FixedClock(time.Date(2020, 1, 7, 10, 0, 0, 0, shared.BusinessLocation()))
	authService := auth.NewService(cfg.Auth)

	router := NewRouter(cfg, authService, Controllers{
		Health:         health.NewController(cfg, nil),
		Authentication: authentication.NewController(authService),
		Order: order.NewController(orderapp.NewApplicationService(orders, products, closingPeriods, features, notifications,
			domainorder.NewFactory(clock))),
		Product:         product.NewController(productapp.NewApplicationService(products, domainproduct.NewFactory())),
		ClosingPeriod:   closingperiod.NewController(closingperiodapp.NewApplicationService(closingPeriods)),
		ProductOrdering: productordering.NewController(featureapp.NewApplicationService(features)),
	})
	router.SetupRoutes()

	return &testServer{engine: router.GetEngine(), notifications: notifications}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/authentication/login", "", map[string]string{
		"username": "ADMIN", "password": adminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data authentication.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func pickUpOrder() map[string]interface{} {
	return map[string]interface{}{
		"clientName":         "Jeanne Tremblay",
		"clientPhoneNumber":  "514-555-0101",
		"clientEmailAddress": "jeanne@example.com",
		"products":           []map[string]int{{"productId": 1, "quantity": 2}},
		"type":               "PICK_UP",
		"pickUpDate":         "2020-01-09",
	}
}

func TestPostOrder_Anonymous(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/orders", "", pickUpOrder())

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/orders/1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1}`, string(decode(t, rec).Data))
	require.Len(t, s.notifications.sent, 1)
	assert.Equal(t, "Nouvelle commande #1", s.notifications.sent[0].Subject)
}

func TestPostOrder_Invalid(t *testing.T) {
	s := newTestServer(t)
	req := pickUpOrder()
	req["clientName"] = ""

	rec := s.do(t, http.MethodPost, "/api/orders", "", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ORDER", decode(t, rec).Error)
	assert.Empty(t, s.notifications.sent)
}

func TestPostOrder_OrderingDisabled(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPut, "/api/product-ordering/disable", token, nil).Code)

	rec := s.do(t, http.MethodPost, "/api/orders", "", pickUpOrder())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "PRODUCT_ORDERING_DISABLED", decode(t, rec).Error)

	status := s.do(t, http.MethodGet, "/api/product-ordering/status", "", nil)
	assert.JSONEq(t, `{"status":"DISABLED"}`, string(decode(t, status).Data))

	// the admin can still order
	assert.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", token, pickUpOrder()).Code)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/orders/csv"},
		{http.MethodPut, "/api/orders/1/check"},
		{http.MethodDelete, "/api/orders/1"},
		{http.MethodGet, "/api/products"},
		{http.MethodPost, "/api/closing-periods"},
		{http.MethodPut, "/api/product-ordering/enable"},
		{http.MethodGet, "/api/authentication/profile"},
	} {
		rec := s.do(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}

	rec := s.do(t, http.MethodGet, "/api/orders", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/authentication/login", "", map[string]string{"username": "ADMIN", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", pickUpOrder()).Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPut, "/api/orders/1/check", token, nil).Code)

	rec := s.do(t, http.MethodGet, "/api/orders?year=2020", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []orderapp.OrderResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &orders))
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Checked)
	assert.Equal(t, "2020-01-09", orders[0].PickUpDate)
	assert.Equal(t, "3.25", orders[0].Products[0].Product.Price)

	rec = s.do(t, http.MethodGet, "/api/orders/products/2020-01-08/2020-01-10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Baguette","pickUpCount":2,"deliveryCount":0,"reservationCount":0,"totalCount":2}]`,
		string(decode(t, rec).Data))

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/orders/1", token, nil).Code)
	rec = s.do(t, http.MethodDelete, "/api/orders/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decode(t, rec).Error)
}

func TestGetOrdersAsCSV(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", pickUpOrder()).Code)

	rec := s.do(t, http.MethodGet, "/api/orders/csv", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "orderId,clientName,clientPhoneNumber,clientEmailAddress,product,quantity,type,pickUpDate,deliveryDate,deliveryAddress,reservationDate,note", lines[0])
	assert.Equal(t, "1,Jeanne Tremblay,514-555-0101,jeanne@example.com,Baguette,2,Cueillette,2020-01-09,,,,", lines[1])
}

func TestBadParameters(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/orders?year=abc", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/orders/date/09-01-2020", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, "/api/orders/abc/check", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/orders/last?count=0", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/orders/range/0001-01-01/9999-12-31", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/orders/products/2020-01-01/2021-12-31", token, nil).Code)
}

func TestProductsAndClosingPeriods(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/api/products", token, map[string]interface{}{"name": "Croissant", "price": "1.80"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/products/2", rec.Header().Get("Location"))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPut, "/api/products/1/archive", token, nil).Code)

	rec = s.do(t, http.MethodGet, "/api/products", token, nil)
	var products []productapp.ProductResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Croissant", products[0].Name)

	rec = s.do(t, http.MethodPost, "/api/closing-periods", token, map[string]string{"startDate": "2020-07-01", "endDate": "2020-07-15"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/closing-periods", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"startDate":"2020-07-01","endDate":"2020-07-15"}]`, string(decode(t, rec).Data))

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/closing-periods/1", token, nil).Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storage":"memory"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/health"`)
}
