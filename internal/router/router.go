// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/threadly/clothing-store-backend/internal/config"
	"github.com/threadly/clothing-store-backend/internal/handlers"
	"github.com/threadly/clothing-store-backend/internal/middleware"
	"github.com/threadly/clothing-store-backend/internal/services"
)

func Initialize(st services.DocumentStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(st)
	orderService := services.NewOrderService(st)
	seedService := services.NewSeedService(st)

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(st)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	seedHandler := handlers.NewSeedHandler(seedService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.NewRateLimiter(cfg.RateLimit).Middleware())

	// System routes
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.TestDatabase)

	// Seeding
	r.POST("/seed", seedHandler.SeedProducts)

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
	}

	// Order routes
	r.POST("/orders", orderHandler.CreateOrder)

	return r
}
