package httpapi

import (
	"net/http"
	"time"

	"cafe-analytics-services/internal/config"
	"cafe-analytics-services/internal/http/handlers"
	"cafe-analytics-services/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func NewRouter(db *pgxpool.Pool, logger *zap.Logger, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           300,
		}
		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}
		r.Use(cors.Handler(options))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid CAFE_TIMEZONE; falling back to UTC", zap.String("timezone", cfg.Timezone))
		loc = time.UTC
	}

	h := &handlers.Handler{DB: db, Logger: logger, Config: cfg, Location: loc}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/analytics", h.DashboardAnalytics)
		r.Get("/summary", h.DashboardSummary)
	})

	return r
}
