package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wareFlow/app/echo-server/router"
	"wareFlow/business/auth"
	"wareFlow/business/catalog"
	"wareFlow/business/customers"
	"wareFlow/business/imports"
	"wareFlow/business/orders"
	"wareFlow/business/payments"
	"wareFlow/business/stock"
	"wareFlow/internal/middleware"
	psqlRepo "wareFlow/internal/repository/postgres"
	"wareFlow/internal/rest"
	"wareFlow/pkg/config"
	"wareFlow/pkg/database"
	"wareFlow/pkg/logger"
	"wareFlow/pkg/metrics"
	"wareFlow/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting WareFlow", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.ExpiryHours)

	// Init repo
	adminRepo := psqlRepo.NewAdminRepository(db)
	customerRepo := psqlRepo.NewCustomerRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	stockRepo := psqlRepo.NewStockInRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	importsRepo := psqlRepo.NewImportsRepository(db)
	paymentsRepo := psqlRepo.NewPaymentsRepository(db)

	if err := categoryRepo.EnsureDefault(context.Background(), cfg.Import.DefaultCategoryID); err != nil {
		logger.Fatal("Failed to seed default category", "error", err)
	}

	// Init service
	authService := auth.NewAuthService(adminRepo, customerRepo, jwtManager)
	catalogService := catalog.NewCatalogService(productRepo, categoryRepo)
	stockService := stock.NewStockService(stockRepo, productRepo)
	ordersService := orders.NewOrdersService(ordersRepo, productRepo, customerRepo)
	customersService := customers.NewCustomersService(customerRepo, cfg.Import.DefaultCustomerPassword)
	importsService := imports.NewImportService(importsRepo, cfg.Import.DefaultCategoryID)
	paymentsService := payments.NewPaymentsService(paymentsRepo, ordersRepo)

	// Init handler
	authHandler := rest.NewAuthHandler(authService)
	productHandler := rest.NewProductHandler(catalogService)
	stockHandler := rest.NewStockHandler(stockService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	customersHandler := rest.NewCustomersHandler(customersService)
	importsHandler := rest.NewImportsHandler(importsService)
	paymentsHandler := rest.NewPaymentsHandler(paymentsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Metrics())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(jwtManager)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api")
	router.SetupAuthRoutes(api, authHandler)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupStockRoutes(api, stockHandler, authRequired, adminOnly)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired)
	router.SetupCustomersRoutes(api, customersHandler, authRequired, adminOnly)
	router.SetupImportsRoutes(api, importsHandler, authRequired, adminOnly)
	router.SetupPaymentsRoutes(api, paymentsHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
