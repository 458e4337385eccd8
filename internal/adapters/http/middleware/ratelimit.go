package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"

	"github.com/jsamuelsen/movie-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/movie-quotes/internal/platform/config"
	"github.com/jsamuelsen/movie-quotes/internal/platform/logging"
)

// RateLimit returns a net/http middleware limiting each client IP to
// cfg.Requests per cfg.Window. Probe paths are never limited so that
// orchestrators keep seeing the service. A disabled config is a no-op.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	)

	return func(next http.Handler) http.Handler {
		limited := limiter(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, probePrefix) {
				next.ServeHTTP(w, r)
				return
			}

			limited.ServeHTTP(w, r)
		})
	}
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logging.FromContext(ctx).WarnContext(ctx, "rate limit exceeded",
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)

	body, err := json.Marshal(dto.NewErrorResponse(dto.ErrorCodeRateLimited, "too many requests"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write(body)
}
