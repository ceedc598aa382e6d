package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/config"
	"github.com/capturesangli/studio-api/internal/notifyfn"
	"github.com/capturesangli/studio-api/internal/pkg/email"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	port := os.Getenv("NOTIFY_PORT")
	if port == "" {
		port = "8081"
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", port).
		Msg("Starting notification function")

	sender := email.NewResendClient(email.ResendConfig{
		APIKey:    cfg.ResendAPIKey,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
	})

	renderer, err := email.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse email templates")
	}

	handler := notifyfn.NewHandler(sender, renderer, cfg.StudioEmail)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Notification function listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down notification function...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Notification function exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
