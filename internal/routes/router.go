package routes

import (
	"net/http"

	"fleet-monitor/internal/config"
	"fleet-monitor/internal/delivery/http/handler"
	"fleet-monitor/internal/infrastructure/database/postgres"
	"fleet-monitor/internal/logger"
	"fleet-monitor/internal/middleware"
	"fleet-monitor/internal/usecase/route"
	"fleet-monitor/internal/usecase/telemetry"
	"fleet-monitor/internal/weather"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, metrics handler.MetricsProvider) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	routeRepository := postgres.NewRouteRepository(db)
	weatherClient := weather.NewClient(&cfg.Weather)
	routeService := route.NewService(routeRepository, weatherClient)
	routeHandler := handler.NewRouteHandler(routeService)

	telemetryRepository := postgres.NewTelemetryRepository(db)
	telemetryService := telemetry.NewService(telemetryRepository)
	telemetryHandler := handler.NewTelemetryHandler(telemetryService, metrics)

	v1 := router.Group("/api/v1")
	{
		routeHandler.RegisterRoutes(v1)
		telemetryHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.APIKeyMiddleware(cfg.API.Key))
		{
			routeHandler.RegisterWriteRoutes(protected)
			telemetryHandler.RegisterWriteRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
