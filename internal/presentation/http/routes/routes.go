package routes

import (
	"github.com/BhavikPahuja/eBillingBackend/internal/config"
	"github.com/BhavikPahuja/eBillingBackend/internal/presentation/http/handler"
	"github.com/BhavikPahuja/eBillingBackend/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill *handler.BillHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	api := router.Group("/api")

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   middleware.DefaultRateLimiterConfig().CleanupInterval,
		EntryTTL:          middleware.DefaultRateLimiterConfig().EntryTTL,
	})
	api.Use(rateLimiter.Middleware())

	// The static excel route must be declared alongside the :id routes;
	// gin gives static segments priority over the parameter.
	api.POST("/bills", h.Bill.Create)
	api.GET("/bills", h.Bill.List)
	api.GET("/bills/excel", h.Bill.GetExcel)
	api.GET("/bills/:id", h.Bill.GetByID)
	api.GET("/bills/:id/pdf", h.Bill.GetPDF)

	return router
}
