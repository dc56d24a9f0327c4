package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/config"
	"storefront-app/database"
	routes "storefront-app/internal/app/http"
	"storefront-app/internal/infra/logger"
	"storefront-app/internal/repository"
	"storefront-app/internal/repository/memory"
	"storefront-app/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(cfg.LogLevel, cfg.LogPath)
	defer lg.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var repos *repository.Repositories
	if cfg.MemoryMode() {
		lg.Warn("DB_URL not set, running with in-memory storage; data is lost on restart")
		repos = memory.NewRepositories()
	} else {
		db, err := database.InitDB(cfg.DBURL, lg)
		if err != nil {
			lg.Fatal("Database connection failed", zap.Error(err))
		}
		repos = postgres.NewRepositories(db, lg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Bootstrap(ctx, repos, cfg.AdminUsername, cfg.AdminPassword, lg)
	cancel()
	if err != nil {
		lg.Fatal("Bootstrap failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// ✅ Add CORS middleware BEFORE registering routes
	origins := strings.Split(cfg.CORSOrigin, ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.CORSOrigin != "*",
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Repos:     repos,
		Logger:    lg,
		JWTSecret: cfg.JWTSecret,
		JWTTTL:    cfg.JWTTTL,
	})

	lg.Info("Server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	if err := r.Run(":" + cfg.Port); err != nil {
		lg.Fatal("Server stopped", zap.Error(err))
	}
}
