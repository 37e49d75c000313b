package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"funcapp-api/internal/config"
	"funcapp-api/internal/logging"
	"funcapp-api/pkg/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Configure(cfg.Logging.Level, cfg.Logging.Format, os.Stdout); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"route_prefix": cfg.RoutePrefix,
		"auth":         cfg.AuthRequired(),
	}).Info("Function host started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
