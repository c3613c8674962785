package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mekdahl/barkassa-api/internal/application/service"
	"github.com/mekdahl/barkassa-api/internal/config"
	"github.com/mekdahl/barkassa-api/internal/infrastructure/database"
	"github.com/mekdahl/barkassa-api/internal/infrastructure/repository"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/handler"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/routes"
	"github.com/mekdahl/barkassa-api/pkg/printer"
	"github.com/mekdahl/barkassa-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Initialize the receipt printer. A misconfigured printer must not
	// keep the register from starting.
	p, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: printer unavailable, printing disabled: %v", err)
		p = printer.NewNullPrinter()
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	saleService := service.NewSaleService(saleRepo, menuRepo)
	reportService := service.NewReportService(saleRepo)
	printerService := service.NewPrinterService(p, reportService, service.VenueHeader{
		Name:    cfg.Venue.Name,
		Address: cfg.Venue.Address,
		Phone:   cfg.Venue.Phone,
	}, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(cfg, jwtManager),
		Menu:    handler.NewMenuHandler(menuService),
		Sale:    handler.NewSaleHandler(saleService),
		Report:  handler.NewReportHandler(reportService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Printf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
