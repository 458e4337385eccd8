package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen/movie-quotes/internal/platform/config"
)

// CORS returns a net/http middleware applying cfg. Preflight requests are
// answered before they reach the gin engine.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	exposed := append([]string{HeaderRequestID, HeaderCorrelationID}, cfg.ExposedHeaders...)

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: append([]string{HeaderRequestID, HeaderCorrelationID}, cfg.AllowedHeaders...),
		ExposedHeaders: exposed,
		MaxAge:         cfg.MaxAge,
	})
}
