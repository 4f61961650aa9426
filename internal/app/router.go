package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/config"
	"github.com/heartmarshall/house-inventory-backend/internal/transport/middleware"
	"github.com/heartmarshall/house-inventory-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type metricsHandler interface {
	Handler() http.Handler
}

type routerDeps struct {
	cfg        *config.Config
	logger     *slog.Logger
	tokens     tokenValidator
	limiter    *middleware.RateLimiter
	containers *rest.ContainerHandler
	health     *rest.HealthHandler
	metrics    metricsHandler
}

// newRouter mounts probes, metrics and the API. Probes and metrics bypass
// auth and rate limiting; API routes require an authenticated caller.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	d.health.Register(mux)
	if d.cfg.Metrics.Enabled {
		mux.Handle("GET "+d.cfg.Metrics.Path, d.metrics.Handler())
	}

	api := middleware.Chain(
		d.limiter.Limit(d.cfg.Server.RateLimitPerMinute),
	)
	d.containers.Register(mux, func(h http.Handler) http.Handler {
		return api(middleware.RequireUser(h))
	})

	return middleware.Chain(
		middleware.Recovery(d.logger),
		middleware.RequestID,
		middleware.CORS(d.cfg.CORS),
		middleware.Auth(d.tokens),
		middleware.Logger(d.logger),
	)(mux)
}
