package handlers

import (
	"time"

	"cafe-analytics-services/internal/analytics"
	"cafe-analytics-services/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Handler struct {
	DB       *pgxpool.Pool
	Logger   *zap.Logger
	Config   config.Config
	Location *time.Location
	// Estimator overrides the per-request random estimator; tests set it to
	// an analytics.FixedEstimator.
	Estimator analytics.Estimator
}
