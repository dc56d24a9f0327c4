package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminapi "storefront-app/internal/api/admin"
	authapi "storefront-app/internal/api/auth"
	catalogapi "storefront-app/internal/api/catalog"
	ordersapi "storefront-app/internal/api/orders"
	siteapi "storefront-app/internal/api/site"
	"storefront-app/internal/api/users"
	"storefront-app/internal/app/http/middleware"
	"storefront-app/internal/domain/access"
	"storefront-app/internal/repository"
)

// Deps is everything the route table needs.
type Deps struct {
	Repos     *repository.Repositories
	Logger    *zap.Logger
	JWTSecret string
	JWTTTL    time.Duration
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	repos, logger := d.Repos, d.Logger

	r.Use(middleware.Logging(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public storefront reads
	r.GET("/site-config", siteapi.GetSiteConfig(repos.Site, logger))
	r.GET("/products", catalogapi.ListProducts(repos.Product, logger))
	r.GET("/products/:id", catalogapi.GetProduct(repos.Product, logger))
	r.POST("/products/:id/like", catalogapi.LikeProduct(repos.Product, logger))
	r.GET("/categories", catalogapi.ListCategories(repos.Category, logger))
	r.POST("/login", authapi.Login(repos.User, d.JWTSecret, d.JWTTTL, logger))

	// ✅ Customer-supplied text is sanitized before it is stored
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/orders", ordersapi.CreateOrder(repos.Order, logger))

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(d.JWTSecret), middleware.LoadUser(repos.User, logger))
	auth.GET("/me", authapi.Me())

	siteAdmin := auth.Group("/", middleware.RequirePermission(access.ManageSite))
	siteAdmin.PUT("/site-config", siteapi.ReplaceSiteConfig(repos.Site, logger))
	siteAdmin.PATCH("/site-config", siteapi.PatchSiteConfig(repos.Site, logger))

	productAdmin := auth.Group("/", middleware.RequirePermission(access.ManageProducts))
	productAdmin.POST("/products", catalogapi.CreateProduct(repos.Product, repos.Category, logger))
	productAdmin.PUT("/products/:id", catalogapi.UpdateProduct(repos.Product, repos.Category, logger))
	productAdmin.DELETE("/products/:id", catalogapi.DeleteProduct(repos.Product, logger))

	categoryAdmin := auth.Group("/", middleware.RequirePermission(access.ManageCategories))
	categoryAdmin.POST("/categories", catalogapi.CreateCategory(repos.Category, logger))
	categoryAdmin.PUT("/categories/:id", catalogapi.UpdateCategory(repos.Category, logger))
	categoryAdmin.DELETE("/categories/:id", catalogapi.DeleteCategory(repos.Category, logger))

	orderAdmin := auth.Group("/", middleware.RequirePermission(access.ManageOrders))
	orderAdmin.GET("/orders", ordersapi.ListOrders(repos.Order, logger))
	orderAdmin.GET("/orders/:id", ordersapi.GetOrder(repos.Order, logger))
	orderAdmin.PUT("/orders/:id/status", ordersapi.UpdateOrderStatus(repos.Order, logger))
	orderAdmin.GET("/admin/dashboard", adminapi.AdminDashboard(repos, logger))

	userAdmin := auth.Group("/", middleware.RequirePermission(access.ManageUsers))
	userAdmin.GET("/users", users.ListUsers(repos.User, logger))
	userAdmin.POST("/users", users.CreateUser(repos.User, logger))
	userAdmin.DELETE("/users/:id", users.DeleteUser(repos.User, logger))
}
