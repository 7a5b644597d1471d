package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sskhi1/pos-system/internal/config"
	"github.com/sskhi1/pos-system/internal/presentation/http/handler"
	"github.com/sskhi1/pos-system/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Unit    *handler.UnitHandler
	Product *handler.ProductHandler
	Receipt *handler.ReceiptHandler
	Report  *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerUnitRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerReceiptRoutes(v1, h)

		// Sales report
		v1.GET("/sales", h.Report.Get)
	}

	return router
}

func registerUnitRoutes(v1 *gin.RouterGroup, h *Handlers) {
	units := v1.Group("/units")
	{
		units.POST("", h.Unit.Create)
		units.GET("", h.Unit.List)
		units.GET("/:id", h.Unit.Get)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PATCH("/:id", h.Product.UpdatePrice)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.POST("", h.Receipt.Create)
		receipts.POST("/:id/products", h.Receipt.AddProduct)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PATCH("/:id", h.Receipt.UpdateStatus)
		receipts.DELETE("/:id", h.Receipt.Delete)
	}
}
