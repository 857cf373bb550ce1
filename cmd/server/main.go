package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/handlers"
	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/SAP-F-2025/influencer-survey/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := utils.NewLogger(cfg.Environment, os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rt, err := pkg.NewRuntime(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialise runtime", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Warn("Error while closing resources", "error", err)
		}
	}()

	appLogger := utils.NewSlogLogger(logger)
	router := gin.New()
	router.Use(utils.RequestID(), utils.LoggerMiddleware(appLogger), gin.Recovery())
	handlers.NewHandlerManager(rt.Services, rt.Validator, appLogger).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server listening",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"remote_store", rt.Services.Gateway().IsPrimaryAvailable(),
			"local_driver", cfg.Local.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
