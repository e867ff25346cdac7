package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/planvault/api/v1"
	"github.com/planvault/cache"
	"github.com/planvault/config"
	"github.com/planvault/database"
	"github.com/planvault/logutils"
	"github.com/planvault/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database and run migrations
	database.Initialize()

	// Row cache: Redis when configured, in-process LRU otherwise
	var rowCache cache.RowCache
	if addr := config.RedisAddr(); addr != "" {
		rowCache = cache.NewRedisCache(addr, config.CacheTTL())
		logutils.Log.WithField("addr", addr).Info("Using Redis row cache")
	} else {
		rowCache = cache.NewMemoryCache(config.CacheSize(), config.CacheTTL())
		logutils.Log.Info("Using in-memory row cache")
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, services.NewSectionService(rowCache))

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logutils.Log.WithField("port", port).Info("Starting planvault API server")
	if err := router.Run(":" + port); err != nil {
		logutils.Log.Fatalf("Failed to start server: %v", err)
	}
}
