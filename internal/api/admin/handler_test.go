package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/repository/memory"
)

func TestAdminDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositories()
	ctx := context.Background()

	require.NoError(t, repos.Product.Create(ctx, &catalog.Product{Name: "A", Price: 1, Stock: 10, Likes: 2}))
	require.NoError(t, repos.Product.Create(ctx, &catalog.Product{Name: "B", Price: 1, Stock: 1, Likes: 5}))

	items := orders.LineItems{{ProductID: 1, Quantity: 1}}
	placed := orders.Order{Items: items, Total: 40, Status: orders.StatusPending}
	require.NoError(t, repos.Order.Create(ctx, &placed))
	cancelled := orders.Order{Items: items, Total: 15, Status: orders.StatusCancelled}
	require.NoError(t, repos.Order.Create(ctx, &cancelled))

	r := gin.New()
	r.GET("/admin/dashboard", AdminDashboard(repos, zap.NewNop()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats AdminStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 40.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.OrdersPerStatus[orders.StatusCancelled])
	assert.Equal(t, 0, stats.OrdersPerStatus[orders.StatusShipped])
	assert.Equal(t, 7, stats.TotalLikes)
	assert.Equal(t, []uint{2}, stats.LowStock)
}
