package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/movie-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/movie-quotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/movie-quotes/internal/platform/telemetry"
)

// RouterConfig contains the handlers and settings the router is built from.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	QuoteHandler  *handlers.QuoteHandler
	HealthHandler *handlers.HealthHandler

	// Timeout bounds each /v1 request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter registers middleware and routes on engine.
// Middleware runs in this order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry span, then metrics and the X-Trace-ID header
//  5. Logging (probes skipped)
//  6. Timeout, on /v1 only
//
// Routes:
//   - /-/ probes, build info and metrics
//   - /v1/ the quote API
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	v1 := engine.Group("/v1")
	v1.Use(middleware.Timeout(cfg.Timeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(v1)
	}
}
