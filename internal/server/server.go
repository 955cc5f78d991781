package server

import (
	"strconv"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/handler"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/middleware"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/repository"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/fieldcrypt"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/jwtutil"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"github.com/BrenoDPS/teste-tecnico-backend/prometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New assembles the echo instance: middleware, handlers and routes. The
// database handle and configuration come in from the caller so tests can run
// the full stack against their own store.
func New(cfg *config.Config, db *gorm.DB) (*echo.Echo, error) {
	crypt, err := fieldcrypt.New(&cfg.Crypto)
	if err != nil {
		return nil, err
	}

	jwtUtil := jwtutil.NewJWTUtil(&cfg.JWT)
	prometheus.InitMetrics(cfg)

	userRepo := repository.NewUserRepo(db)
	supplierRepo := repository.NewSupplierRepo(db, crypt)
	purchanceRepo := repository.NewPurchanceRepo(db)
	bulkRepo := repository.NewBulkRepo(db, crypt)
	analyticsRepo := repository.NewAnalyticsRepo(db)

	authHandler := handler.NewAuthHandler(userRepo, jwtUtil)
	supplierHandler := handler.NewSupplierHandler(supplierRepo, cfg.Pagination)
	transactionHandler := handler.NewTransactionHandler(purchanceRepo, cfg.Pagination)
	bulkHandler := handler.NewBulkHandler(bulkRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsRepo)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestID)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := c.Response().Status

			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			statusStr := strconv.Itoa(status)
			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				statusStr,
			).Inc()
			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				statusStr,
			).Observe(duration)

			return err
		}
	})

	// Public routes
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// Auth
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/token", authHandler.Token)
	auth.GET("/me", authHandler.Me, middleware.JWTAuth(jwtUtil))

	// API routes that require authentication
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuth(jwtUtil))

	suppliers := api.Group("/suppliers")
	suppliers.GET("", supplierHandler.List)
	suppliers.POST("", supplierHandler.Create)
	suppliers.GET("/:id", supplierHandler.Get)
	suppliers.PUT("/:id", supplierHandler.Update)
	suppliers.DELETE("/:id", supplierHandler.Delete)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	api.POST("/vehicles/bulk", bulkHandler.CreateVehicles)
	api.POST("/parts/bulk", bulkHandler.CreateParts)
	api.POST("/suppliers/bulk", bulkHandler.CreateSuppliers)
	api.POST("/purchances/bulk", bulkHandler.CreatePurchances)
	api.POST("/warranties/bulk", bulkHandler.CreateWarranties)

	analytics := api.Group("/analytics")
	analytics.GET("/supplier-sales", analyticsHandler.SupplierSales)
	analytics.GET("/warranty-by-model", analyticsHandler.WarrantyByModel)
	analytics.GET("/transactions", analyticsHandler.Transactions)
	analytics.GET("/supplier-transactions", analyticsHandler.SupplierTransactions)
	analytics.GET("/model-transactions", analyticsHandler.ModelTransactions)
	analytics.GET("/part-performance", analyticsHandler.PartPerformance)

	return e, nil
}
