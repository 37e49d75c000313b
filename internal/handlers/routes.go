package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"funcapp-api/docs"
	"funcapp-api/internal/config"
	"funcapp-api/internal/middleware"
	"funcapp-api/internal/services"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Config   *config.Config
	Services *services.ServiceContainer
	Gatherer prometheus.Gatherer
}

// SetupRoutes configures all function and operational routes
func SetupRoutes(router *gin.Engine, rc *RouterConfig) {
	cfg := rc.Config

	greetingHandler := NewGreetingHandler(rc.Services.GreetingService, rc.Services.Metrics)
	csvHandler := NewCSVSummaryHandler(rc.Services.CSVSummaryService, rc.Services.Metrics)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"service":         "funcapp-api",
			"version":         Version,
			"deployment_mode": config.GetDeploymentMode(),
		})
	})

	if cfg.Metrics.Enabled && rc.Gatherer != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(rc.Gatherer, promhttp.HandlerOpts{})))
	}

	if !cfg.IsProduction() {
		docs.SwaggerInfo.BasePath = cfg.RoutePrefix
		if docs.SwaggerInfo.BasePath == "" {
			docs.SwaggerInfo.BasePath = "/"
		}
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	functions := router.Group(cfg.RoutePrefix)
	functions.Use(middleware.SecurityHeaders())
	functions.Use(middleware.FunctionKeyAuth(cfg.FunctionKey))
	functions.Use(middleware.RequestSizeLimit(cfg.Limits.MaxBodyBytes))
	{
		functions.Any("/"+FunctionHTTPTrigger, greetingHandler.HTTPTrigger)
		functions.Any("/"+FunctionProcessCSV, csvHandler.ProcessCSV)
	}
}

// FunctionName resolves a request path to a function name. The route prefix
// is optional so that both API Gateway stage mappings and bare paths route.
func FunctionName(prefix, path string) string {
	path = strings.TrimRight(path, "/")
	if prefix != "" {
		if trimmed, ok := strings.CutPrefix(path, prefix); ok && strings.HasPrefix(trimmed, "/") {
			path = trimmed
		}
	}

	switch path {
	case "/" + FunctionHTTPTrigger:
		return FunctionHTTPTrigger
	case "/" + FunctionProcessCSV:
		return FunctionProcessCSV
	default:
		return ""
	}
}
