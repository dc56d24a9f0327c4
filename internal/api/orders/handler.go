package ordersapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/repository"
)

type createOrderInput struct {
	Customer orders.Customer   `json:"customer"`
	Items    []orders.LineItem `json:"items"`
	Total    float64           `json:"total"`
	Date     string            `json:"date"`
}

// POST /orders
//
// Public. The status is always Pending and the date falls back to today when
// the client sends none or an unparseable one.
func CreateOrder(repo repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in createOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.BadRequest(c, "Invalid order payload")
			return
		}

		date := in.Date
		if _, err := time.Parse(orders.DateLayout, date); err != nil {
			date = time.Now().Format(orders.DateLayout)
		}
		o := orders.Order{
			Customer: in.Customer,
			Items:    in.Items,
			Total:    in.Total,
			Status:   orders.StatusPending,
			Date:     date,
		}
		if err := o.Validate(); err != nil {
			apierr.BadRequest(c, err.Error())
			return
		}

		if err := repo.Create(c.Request.Context(), &o); err != nil {
			apierr.Write(c, logger, err, "Failed to place order")
			return
		}
		logger.Info("Order placed",
			zap.String("order_id", o.ID.String()),
			zap.Int("items", len(o.Items)),
			zap.Float64("total", o.Total),
		)
		c.JSON(http.StatusCreated, o)
	}
}

// GET /orders
func ListOrders(repo repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load orders")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:id
func GetOrder(repo repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apierr.BadRequest(c, "Invalid order id")
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load order")
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

var errInvalidStatus = errors.New("status must be one of Pending, Shipped, Delivered, Cancelled")

// PUT /orders/:id/status
func UpdateOrderStatus(repo repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apierr.BadRequest(c, "Invalid order id")
			return
		}
		var in struct {
			Status orders.Status `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || !in.Status.IsValid() {
			apierr.BadRequest(c, errInvalidStatus.Error())
			return
		}

		o, err := repo.UpdateStatus(c.Request.Context(), id, in.Status)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to update order")
			return
		}
		logger.Info("Order status updated", zap.String("order_id", id.String()), zap.String("status", string(o.Status)))
		c.JSON(http.StatusOK, o)
	}
}
