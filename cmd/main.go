package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-service/internal/apperr"
	"inventory-service/internal/handler"
	mid "inventory-service/internal/middleware"
	"inventory-service/internal/namegen"
	"inventory-service/internal/repository"
	"inventory-service/internal/service"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/jwtutil"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

func main() {
	// Load configuration (.env is picked up there when present)
	appConfig, err := config.Load("inventory-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-service", appConfig.LogFields()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Wire the product creation flow
	productRepo := repository.NewGormProductRepository(database.GetDB())
	productService := service.NewProductService(productRepo, namegen.Stub{})
	productHandler := handler.NewProductHandler(productService)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.ErrorHandler

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Product API routes; bearer-token auth is opt-in via config
	productAPI := e.Group("/api/v1/products")
	if appConfig.Auth.Enabled {
		log.Info("Bearer-token auth enabled for product API")
		productAPI.Use(mid.AuthMiddleware)
	}
	productAPI.POST("", productHandler.CreateProduct)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
