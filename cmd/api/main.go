package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/config"
	"github.com/capturesangli/studio-api/internal/domain/admin"
	"github.com/capturesangli/studio-api/internal/domain/booking"
	"github.com/capturesangli/studio-api/internal/domain/contact"
	"github.com/capturesangli/studio-api/internal/domain/gallery"
	"github.com/capturesangli/studio-api/internal/middleware"
	"github.com/capturesangli/studio-api/internal/pkg/database"
	"github.com/capturesangli/studio-api/internal/pkg/imaging"
	"github.com/capturesangli/studio-api/internal/pkg/notify"
	pkgresponse "github.com/capturesangli/studio-api/internal/pkg/response"
	"github.com/capturesangli/studio-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Capture Sangli API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	// ---------- Notification sink ----------
	var notifier *notify.Client
	if cfg.NotifyEnabled {
		notifier = notify.NewClient(cfg.NotifyURL, time.Duration(cfg.NotifyTimeoutSeconds)*time.Second)
	} else {
		log.Warn().Msg("Notifications disabled")
	}

	// ---------- Gallery storage ----------
	r2Storage, err := storage.NewR2Storage(storage.R2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		AccessKeySecret: cfg.R2AccessKeySecret,
		BucketName:      cfg.R2BucketName,
		PublicURL:       cfg.R2PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create R2 storage")
	}

	processor := imaging.NewProcessor(imaging.DefaultConfig())

	// ---------- Repositories ----------
	contactRepo := contact.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	galleryRepo := gallery.NewRepository(db)

	// ---------- Services ----------
	contactService := contact.NewService(contactRepo, notifierOrNil(notifier))
	bookingService := booking.NewService(bookingRepo, notifierOrNil(notifier))
	galleryService := gallery.NewService(galleryRepo, r2Storage, processor)
	adminService := admin.NewService(contactService, bookingService)

	// ---------- Handlers ----------
	contactHandler := contact.NewHandler(contactService)
	bookingHandler := booking.NewHandler(bookingService)
	galleryHandler := gallery.NewHandler(galleryService)
	adminHandler := admin.NewHandler(adminService)

	// ---------- Middleware ----------
	var counter middleware.SubmitCounter
	if redis != nil {
		counter = middleware.NewRedisSubmitCounter(redis)
	}
	throttle := middleware.SubmitThrottle(counter, cfg.SubmitLimit, cfg.SubmitWindow)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/contacts", contactHandler.PublicRoutes(throttle))
		r.Mount("/bookings", bookingHandler.PublicRoutes(throttle))
		r.Mount("/", galleryHandler.PublicRoutes())
	})

	// Admin surface sits behind an externally managed access boundary
	r.Route("/api/admin", func(r chi.Router) {
		r.Mount("/", adminHandler.Routes())
		r.Mount("/gallery", galleryHandler.AdminRoutes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// notifierOrNil keeps a disabled notifier as a true nil interface
func notifierOrNil(c *notify.Client) contact.Notifier {
	if c == nil {
		return nil
	}
	return c
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
