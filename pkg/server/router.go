package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"funcapp-api/internal/handlers"
	"funcapp-api/internal/middleware"
)

// NewRouter builds the gin engine serving the functions over plain HTTP
func NewRouter(c *Container) *gin.Engine {
	cfg := c.Config

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RateLimiter(cfg.Limits.RateLimitRPS, cfg.Limits.RateLimitBurst))

	var gatherer prometheus.Gatherer
	if c.Registry != nil {
		gatherer = c.Registry
	}

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Config:   cfg,
		Services: c.Services(),
		Gatherer: gatherer,
	})

	return router
}
