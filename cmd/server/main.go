package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jinian-0/web-AI-cs1/internal/config"
	"github.com/jinian-0/web-AI-cs1/internal/handler"
	"github.com/jinian-0/web-AI-cs1/internal/middleware"
	"github.com/jinian-0/web-AI-cs1/internal/repository"
	"github.com/jinian-0/web-AI-cs1/internal/service"
)

func main() {
	// Setup structured logging
	setupLogging(os.Getenv("LOG_FILE"))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	store := repository.NewSessionStore(cfg.SessionsDir)
	gateway := service.NewOpenAIGateway(cfg.APIKey, cfg.BaseURL)
	conversation := service.NewConversationService(cfg, store, gateway)

	// Router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.Recover(),
		middleware.Logging(),
	)

	h := handler.New(handler.Deps{
		Cfg:          cfg,
		Conversation: conversation,
		Store:        store,
	})
	h.Register(r)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown", "error", err)
		}
	}()

	slog.Info("starting server", "addr", cfg.ListenAddr, "sessions_dir", cfg.SessionsDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogging(logFile string) {
	var w io.Writer = os.Stdout
	if logFile != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			MaxAge:     config.LogMaxAgeDays,
		})
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
}
