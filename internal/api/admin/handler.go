package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/repository"
)

// lowStockThreshold is the stock level at or below which a product is listed
// as running out.
const lowStockThreshold = 3

type AdminStats struct {
	TotalOrders     int                   `json:"totalOrders"`
	OrdersPerStatus map[orders.Status]int `json:"ordersPerStatus"`
	// TotalRevenue sums every order that was not cancelled.
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProducts int     `json:"totalProducts"`
	LowStock      []uint  `json:"lowStock"`
	TotalLikes    int     `json:"totalLikes"`
}

// GET /admin/dashboard
func AdminDashboard(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		list, err := repos.Order.List(ctx)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load orders")
			return
		}
		products, err := repos.Product.List(ctx, repository.ProductFilter{})
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load products")
			return
		}

		stats := AdminStats{
			TotalOrders: len(list),
			OrdersPerStatus: map[orders.Status]int{
				orders.StatusPending:   0,
				orders.StatusShipped:   0,
				orders.StatusDelivered: 0,
				orders.StatusCancelled: 0,
			},
			TotalProducts: len(products),
			LowStock:      []uint{},
		}
		for _, o := range list {
			stats.OrdersPerStatus[o.Status]++
			if o.Status != orders.StatusCancelled {
				stats.TotalRevenue += o.Total
			}
		}
		for _, p := range products {
			stats.TotalLikes += p.Likes
			if p.Stock <= lowStockThreshold {
				stats.LowStock = append(stats.LowStock, p.ID)
			}
		}
		c.JSON(http.StatusOK, stats)
	}
}
