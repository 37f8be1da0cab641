package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-address/internal/config"
	"github.com/prefeitura-rio/app-address/internal/handlers"
	"github.com/prefeitura-rio/app-address/internal/logging"
	"github.com/prefeitura-rio/app-address/internal/middleware"
	"github.com/prefeitura-rio/app-address/internal/observability"
	"github.com/prefeitura-rio/app-address/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-address/docs"
)

// @title           Address Validation API
// @version         1.0
// @description     Thin HTTP front-end for US street address validation. Requests are forwarded to the Smarty US Street Address API and the provider's delivery-point signals are translated into a normalized validated/deliverable verdict with human-readable notes.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name addresses
// @tag.description Address validation operations

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	provider := services.NewSmartyProvider(config.AppConfig, logging.Logger)
	defer provider.Close()

	if !provider.IsConfigured() {
		logging.Logger.Warn("Smarty credentials not configured, validation requests will be rejected")
	}

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.CorrelationID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addressHandlers := handlers.NewAddressHandlers(provider, logging.Logger)
	healthHandlers := handlers.NewHealthHandlers(provider)

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthHandlers.HealthCheck)
		v1.GET("/health/ready", healthHandlers.Readiness)
		v1.GET("/health/live", healthHandlers.Liveness)

		v1.POST("/addresses/validate", addressHandlers.ValidateAddress)
		v1.GET("/addresses/validate", addressHandlers.ValidateAddressQuery)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
