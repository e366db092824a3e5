package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/chemosit/sitecms/pkg/sitecms"
	"github.com/chemosit/sitecms/pkg/sitecms/api"
	"github.com/chemosit/sitecms/pkg/sitecms/blobkey"
	"github.com/chemosit/sitecms/pkg/sitecms/config"
)

// HTTPConfig holds server-level options read directly from the environment
type HTTPConfig struct {
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	serverConfig, err := config.Load(config.WithEnv(""))
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var httpConfig HTTPConfig
	if err := cleanenv.ReadEnv(&httpConfig); err != nil {
		logger.Error("failed to read http configuration", "error", err)
		os.Exit(1)
	}

	if serverConfig.DatabaseType == "postgres" {
		if err := config.PingPostgres(serverConfig.DatabaseURL); err != nil {
			logger.Error("database unreachable", "error", err)
			os.Exit(1)
		}
	}

	svc, blobs, err := serverConfig.BuildService(logger)
	if err != nil {
		logger.Error("failed to build service", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: routes(svc, blobs, serverConfig, httpConfig, logger),
	}

	go func() {
		logger.Info("site cms server starting",
			"port", serverConfig.Port,
			"environment", serverConfig.Environment,
			"database", serverConfig.DatabaseType,
			"storage", serverConfig.StorageBackend.Type)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), httpConfig.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exiting")
}

func routes(svc sitecms.Service, blobs sitecms.BlobStore, cfg *config.ServerConfig, httpCfg HTTPConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(httpCfg.RequestTimeout))

	// CORS for development
	if cfg.Environment == "development" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

				if r.Method == "OPTIONS" {
					w.WriteHeader(http.StatusOK)
					return
				}

				next.ServeHTTP(w, r)
			})
		})
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "environment": "%s"}`, cfg.Environment)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/slides", api.NewSlidesHandler(svc, logger).Routes())
		r.Mount("/achievements", api.NewAchievementsHandler(svc, logger).Routes())
		r.Mount("/collaborators", api.NewCollaboratorsHandler(svc, logger).Routes())
		r.Mount("/team", api.NewTeamHandler(svc, logger).Routes())
		r.Mount("/events", api.NewEventsHandler(svc, logger).Routes())
		r.Mount("/statements", api.NewStatementsHandler(svc, logger).Routes())
		r.Mount("/testimonials", api.NewTestimonialsHandler(svc, logger).Routes())
		r.Mount("/uploads", api.NewUploadsHandler(blobs, blobkey.NewShardedGenerator(), logger).Routes())
	})

	return r
}
