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

	"resume-extractor/internal/config"
	"resume-extractor/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	cfg := container.Config

	// Handlers
	resumeHandler := handler.NewResumeHandler(
		container.ResumeService,
		cfg.GetMaxFileSize(),
		cfg.GetExtractTimeout(),
		container.Logger,
	)

	opts := handler.RouterOptions{
		AllowedOrigins: cfg.GetAllowedOrigins(),
		Logger:         container.Logger,
	}
	if container.AuthService != nil {
		opts.AuthMiddleware = handler.NewAuthMiddleware(
			container.AuthService,
			container.Logger,
		).Middleware
	}

	// Router
	router := handler.NewRouter(handler.NewAuthHandler(), resumeHandler, opts)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "auth_required", cfg.IsAuthRequired())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
