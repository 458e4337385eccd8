package corpus

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/movie-quotes/internal/adapters/clients"
	"github.com/jsamuelsen/movie-quotes/internal/platform/config"
	"github.com/jsamuelsen/movie-quotes/internal/ports"
)

// FromConfig builds one source per configured corpus, in configuration order.
// Every remote corpus gets its own client, so a failing host only trips its
// own breaker.
func FromConfig(cfg config.CorpusConfig, client config.ClientConfig, logger *slog.Logger) ([]ports.CorpusSource, error) {
	sources := make([]ports.CorpusSource, 0, len(cfg.Sources))

	var errs []error

	for i, sc := range cfg.Sources {
		src, err := fromSourceConfig(sc, client, logger)
		if err != nil {
			errs = append(errs, fmt.Errorf("corpus.sources[%d]: %w", i, err))
			continue
		}

		sources = append(sources, src)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return sources, nil
}

func fromSourceConfig(sc config.CorpusSourceConfig, client config.ClientConfig, logger *slog.Logger) (ports.CorpusSource, error) {
	if sc.URL == "" {
		return NewPathSource(sc.Name, sc.Path, sc.Movie)
	}

	c, err := clients.New(&clients.Config{
		BaseURL:     sc.URL,
		ServiceName: sc.Name,
		Timeout:     client.Timeout,
		Retry:       client.Retry,
		Circuit:     client.CircuitBreaker,
		Transport:   client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating client for %q: %w", sc.Name, err)
	}

	return NewRemoteSource(sc.Name, c, "", sc.Movie)
}
