package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
	"github.com/jsamuelsen/movie-quotes/internal/platform/logging"
)

// maxRemoteBytes caps how much of a remote corpus is read.
const maxRemoteBytes = 8 << 20

// Fetcher issues GET requests. *clients.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, path string) (*http.Response, error)
}

// RemoteSource fetches a JSON corpus over HTTP.
type RemoteSource struct {
	name   string
	client Fetcher
	path   string
	movie  string
}

// NewRemoteSource creates a source that GETs path through client. The client
// carries the base URL, so path is usually empty.
func NewRemoteSource(name string, client Fetcher, path, movieSlug string) (*RemoteSource, error) {
	if client == nil {
		return nil, domain.NewCorpusError(name, "no client configured", nil)
	}

	title, err := resolveDefault(name, movieSlug)
	if err != nil {
		return nil, err
	}

	return &RemoteSource{
		name:   name,
		client: client,
		path:   path,
		movie:  title,
	}, nil
}

// Name implements ports.CorpusSource.
func (s *RemoteSource) Name() string {
	return s.name
}

// Load implements ports.CorpusSource. Transport failures are reported as an
// UnavailableError inside the CorpusError.
func (s *RemoteSource) Load(ctx context.Context) ([]domain.QuoteItem, error) {
	logger := logging.FromContext(ctx)
	logger.Log(ctx, logging.LevelTrace, "fetching remote corpus", slog.String("source", s.name))

	resp, err := s.client.Get(ctx, s.path)
	if err != nil {
		return nil, domain.NewCorpusError(s.name, "fetch", domain.NewUnavailableError(s.name, err.Error()))
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Log(ctx, logging.LevelTrace, "remote corpus response",
		slog.String("source", s.name),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxRemoteBytes))
		return nil, domain.NewCorpusError(s.name, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	records, err := decode(FormatJSON, io.LimitReader(resp.Body, maxRemoteBytes))
	if err != nil {
		return nil, domain.NewCorpusError(s.name, "decode json", err)
	}

	return translate(s.name, s.movie, records)
}
