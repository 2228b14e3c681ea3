package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"erp-service/internal/handler"
	"erp-service/internal/middleware"
	"erp-service/internal/model"
	"erp-service/internal/store"
	"erp-service/pkg/config"
	"erp-service/pkg/database"
	"erp-service/pkg/jwtutil"
	"erp-service/pkg/logger"
	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()
	log.Info("Starting ERP service...", cfg.LogConfig()...)

	// Initialize database
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.Migrate(db,
		&model.Tenant{},
		&model.User{},
		&model.Customer{},
		&model.Product{},
		&model.SalesOrder{},
		&model.LedgerEntry{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations applied")

	// Build the data access layer and seed the super-admin account
	st := store.New(db, cfg.DB.AcquireTimeout)

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash super-admin password", zap.Error(err))
	}
	if err := st.Users.SeedSuperAdmin(context.Background(), cfg.SuperAdmin.Email, string(hash)); err != nil {
		log.Fatal("Failed to seed super-admin account", zap.Error(err))
	}
	log.Info("Super-admin account ready", zap.String("email", cfg.SuperAdmin.Email))

	// Initialize JWT utility
	jwtUtil := jwtutil.NewJWTUtil(&cfg.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Build handlers on top of the store interfaces
	authHandler := handler.NewAuthHandler(st.Users, st.Tenants, jwtUtil)
	tenantHandler := handler.NewTenantHandler(st.Tenants)
	customerHandler := handler.NewCustomerHandler(st.Customers)
	productHandler := handler.NewProductHandler(st.Products)
	orderHandler := handler.NewOrderHandler(st.Orders)
	ledgerHandler := handler.NewLedgerHandler(st.Ledger)
	healthHandler := handler.NewHealthHandler(db)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(middleware.MetricsMiddleware)

	// Public routes - no authentication required
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", healthHandler.MetricsHandler)

	// Authentication routes - public, outside the token-guarded group
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// API routes - all require a valid session token
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(jwtUtil))

	// Tenant administration
	tenants := api.Group("/tenants")
	tenants.GET("", tenantHandler.ListTenants)
	tenants.GET("/:id", tenantHandler.GetTenant)
	tenants.PATCH("/:id/subscription", tenantHandler.UpdateSubscription)

	// Tenant-scoped domain entities
	customers := api.Group("/customers")
	customers.GET("", customerHandler.ListCustomers)
	customers.POST("", customerHandler.CreateCustomer)
	customers.PUT("/:id", customerHandler.UpdateCustomer)
	customers.DELETE("/:id", customerHandler.DeleteCustomer)

	products := api.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.POST("", productHandler.CreateProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	orders := api.Group("/sales-orders")
	orders.GET("", orderHandler.ListOrders)
	orders.POST("", orderHandler.CreateOrder)
	orders.PUT("/:id", orderHandler.UpdateOrder)
	orders.DELETE("/:id", orderHandler.DeleteOrder)

	ledger := api.Group("/ledger-entries")
	ledger.GET("", ledgerHandler.ListLedgerEntries)
	ledger.POST("", ledgerHandler.CreateLedgerEntry)
	ledger.PUT("/:id", ledgerHandler.UpdateLedgerEntry)
	ledger.DELETE("/:id", ledgerHandler.DeleteLedgerEntry)

	// Start server and wait for a shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		log.Error("Database close failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
