package ordersapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-app/internal/domain/orders"
	"storefront-app/internal/repository/memory"
)

const validOrder = `{
	"customer":{"name":"Ana","phone":"555","address":"Main 1","city":"Lima"},
	"items":[{"productId":1,"name":"Tee","unitPrice":10,"selectedSize":"M","selectedColor":"red","quantity":2}],
	"total":20,
	"date":"2024-05-01"
}`

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	repo := memory.NewOrderRepository()
	logger := zap.NewNop()
	r.POST("/orders", CreateOrder(repo, logger))
	r.GET("/orders", ListOrders(repo, logger))
	r.GET("/orders/:id", GetOrder(repo, logger))
	r.PUT("/orders/:id/status", UpdateOrderStatus(repo, logger))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createOrder(t *testing.T, r *gin.Engine, body string) orders.Order {
	t.Helper()
	w := do(r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var o orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	return o
}

func TestCreateOrder_ForcesPending(t *testing.T) {
	r := setupRouter()
	body := strings.Replace(validOrder, `"total":20`, `"total":20,"status":"Delivered"`, 1)

	o := createOrder(t, r, body)
	assert.Equal(t, orders.StatusPending, o.Status)
	assert.Equal(t, "2024-05-01", o.Date)
	assert.Len(t, o.Items, 1)

	w := do(r, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, o.ID, list[0].ID)
}

func TestCreateOrder_DefaultsDate(t *testing.T) {
	r := setupRouter()
	o := createOrder(t, r, strings.Replace(validOrder, `"2024-05-01"`, `"yesterday"`, 1))
	assert.Equal(t, time.Now().Format(orders.DateLayout), o.Date)
}

func TestCreateOrder_Rejects(t *testing.T) {
	r := setupRouter()
	tests := []struct {
		name string
		body string
	}{
		{"no items", `{"customer":{"name":"A","phone":"1","address":"x"},"items":[],"total":0}`},
		{"no contact", `{"customer":{"name":"A","address":"x"},"items":[{"productId":1,"quantity":1}],"total":1}`},
		{"zero quantity", `{"customer":{"name":"A","phone":"1","address":"x"},"items":[{"productId":1,"quantity":0}],"total":1}`},
		{"negative total", `{"customer":{"name":"A","phone":"1","address":"x"},"items":[{"productId":1,"quantity":1}],"total":-1}`},
		{"not json", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/orders", tt.body).Code)
		})
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	r := setupRouter()
	o := createOrder(t, r, validOrder)
	path := "/orders/" + o.ID.String() + "/status"

	w := do(r, http.MethodPut, path, `{"status":"Shipped"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Shipped"`)

	// any known status may be set, including going back
	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, path, `{"status":"Pending"}`).Code)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, path, `{"status":"Lost"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/orders/123/status", `{"status":"Shipped"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		do(r, http.MethodPut, "/orders/00000000-0000-0000-0000-000000000001/status", `{"status":"Shipped"}`).Code)

	w = do(r, http.MethodGet, "/orders/"+o.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Pending"`)
}
