package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inetready/travel-advisor/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *AdvisorHandler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// The error renderer has to wrap every middleware that can abort with an
	// attached error, the limiter included.
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/travel/advice", handler.Advise)
		api.GET("/cities", handler.ListCities)
		api.GET("/cities/:from/distance/:to", handler.CityDistance)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
