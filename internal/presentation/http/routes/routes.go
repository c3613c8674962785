package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mekdahl/barkassa-api/internal/config"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/handler"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/middleware"
	"github.com/mekdahl/barkassa-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Menu    *handler.MenuHandler
	Sale    *handler.SaleHandler
	Report  *handler.ReportHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/unlock", h.Auth.Unlock)
		}

		// Protected routes (session token required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.POST("", h.Menu.Create)
		menu.GET("/:id", h.Menu.Get)
		menu.PUT("/:id", h.Menu.Update)
		menu.PATCH("/:id/availability", h.Menu.SetAvailability)
		menu.DELETE("/:id", h.Menu.Delete)
	}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.Sale.Record)
		sales.GET("", h.Sale.List)
	}

	receipts := rg.Group("/receipts")
	{
		receipts.GET("/recent", h.Report.Recent)
		receipts.GET("/:timestamp", h.Report.Get)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.Report.Summary)
	}

	printer := rg.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/receipt/:timestamp", h.Printer.PrintReceipt)
		printer.POST("/summary", h.Printer.PrintSummary)
	}
}
