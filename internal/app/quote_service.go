// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
	"github.com/jsamuelsen/movie-quotes/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/movie-quotes/internal/app"

// Lookup outcomes recorded on quotes_lookups_total.
const (
	outcomeOK           = "ok"
	outcomeNotFound     = "not_found"
	outcomeUnknownMovie = "unknown_movie"
	outcomeError        = "error"
)

// QuoteService orchestrates the quote read use cases and corpus loading.
// It depends on ports only.
type QuoteService struct {
	store   ports.QuoteStore
	logger  *slog.Logger
	tracer  trace.Tracer
	lookups *prometheus.CounterVec
	loads   *prometheus.CounterVec
}

// QuoteServiceConfig contains the dependencies of a QuoteService.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Logger *slog.Logger

	// Registerer receives the service's collectors. Nil skips registration.
	Registerer prometheus.Registerer
}

// NewQuoteService creates a quote service. It panics if Store is nil.
func NewQuoteService(cfg QuoteServiceConfig) (*QuoteService, error) {
	if cfg.Store == nil {
		panic("QuoteService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &QuoteService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.QuoteService")),
		tracer: otel.Tracer(instrumentationName),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_lookups_total",
			Help: "Quote read operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_corpus_loads_total",
			Help: "Corpus source loads by source and outcome.",
		}, []string{"source", "outcome"}),
	}

	if cfg.Registerer != nil {
		for _, c := range []prometheus.Collector{s.lookups, s.loads} {
			if err := cfg.Registerer.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// ListQuotes returns the quotes inside the pagination window.
func (s *QuoteService) ListQuotes(ctx context.Context, p domain.Pagination) []domain.Quote {
	ctx, span := s.tracer.Start(ctx, "QuoteService.ListQuotes", trace.WithAttributes(
		attribute.Int("pagination.offset", p.Offset),
		attribute.Int("pagination.limit", p.Limit),
	))
	defer span.End()

	quotes := s.store.List(ctx, p)

	span.SetAttributes(attribute.Int("quotes.count", len(quotes)))
	s.lookups.WithLabelValues("list", outcomeOK).Inc()

	s.logger.DebugContext(ctx, "listed quotes",
		slog.Int("offset", p.Offset),
		slog.Int("limit", p.Limit),
		slog.Int("count", len(quotes)),
	)

	return quotes
}

// RandomQuote returns a uniformly chosen quote from the pagination window.
func (s *QuoteService) RandomQuote(ctx context.Context, p domain.Pagination) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.RandomQuote", trace.WithAttributes(
		attribute.Int("pagination.offset", p.Offset),
		attribute.Int("pagination.limit", p.Limit),
	))
	defer span.End()

	q, err := s.store.RandomPick(ctx, p)
	s.record(ctx, span, "random", q, err)

	return q, err
}

// RandomQuoteByMovie returns a uniformly chosen quote from the movie named by slug.
func (s *QuoteService) RandomQuoteByMovie(ctx context.Context, slug string) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.RandomQuoteByMovie", trace.WithAttributes(
		attribute.String("movie.slug", slug),
	))
	defer span.End()

	q, err := s.store.RandomPickByMovie(ctx, slug)
	s.record(ctx, span, "random_by_movie", q, err)

	return q, err
}

// Movies returns the movies that quotes can be requested for.
func (s *QuoteService) Movies(context.Context) []domain.Movie {
	s.lookups.WithLabelValues("movies", outcomeOK).Inc()

	return domain.Movies()
}

func (s *QuoteService) record(ctx context.Context, span trace.Span, operation string, q domain.Quote, err error) {
	outcome := outcomeOf(err)
	s.lookups.WithLabelValues(operation, outcome).Inc()

	switch outcome {
	case outcomeOK:
		span.SetAttributes(attribute.String("quote.id", strconv.FormatUint(q.ID, 10)))
		s.logger.DebugContext(ctx, "picked quote",
			slog.String("operation", operation),
			slog.Uint64("quote_id", q.ID),
		)
	case outcomeError:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "quote lookup failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	default:
		span.SetAttributes(attribute.String("lookup.outcome", outcome))
		s.logger.DebugContext(ctx, "no quote picked",
			slog.String("operation", operation),
			slog.String("outcome", outcome),
		)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrUnknownMovie):
		return outcomeUnknownMovie
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}
