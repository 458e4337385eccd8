package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
	"github.com/jsamuelsen/movie-quotes/internal/ports"
)

// LoadPolicy decides what a failing corpus source does to startup.
type LoadPolicy string

const (
	// LoadPolicyFail aborts on the first failing source.
	LoadPolicyFail LoadPolicy = "fail"

	// LoadPolicySkip logs failing sources and keeps the rest. Loading still
	// fails if no source contributed a quote.
	LoadPolicySkip LoadPolicy = "skip"
)

// SourceResult is the outcome of one corpus source.
type SourceResult struct {
	Name     string
	Quotes   int
	Duration time.Duration
	Err      error
}

// LoadReport summarises a LoadCorpora run.
type LoadReport struct {
	Sources []SourceResult
	Total   int
}

// Failed returns the sources that did not load.
func (r LoadReport) Failed() []SourceResult {
	var failed []SourceResult

	for _, src := range r.Sources {
		if src.Err != nil {
			failed = append(failed, src)
		}
	}

	return failed
}

// LoadCorpora reads every source concurrently and bulk loads the results into
// the store in source order, so identifiers are stable for a given
// configuration.
func (s *QuoteService) LoadCorpora(ctx context.Context, sources []ports.CorpusSource, policy LoadPolicy) (LoadReport, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.LoadCorpora", trace.WithAttributes(
		attribute.Int("corpus.sources", len(sources)),
		attribute.String("corpus.policy", string(policy)),
	))
	defer span.End()

	report := LoadReport{Sources: make([]SourceResult, len(sources))}
	batches := make([][]domain.QuoteItem, len(sources))

	g, gctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		g.Go(func() error {
			start := time.Now()
			items, err := src.Load(gctx)

			report.Sources[i] = SourceResult{
				Name:     src.Name(),
				Quotes:   len(items),
				Duration: time.Since(start),
				Err:      err,
			}

			if err != nil {
				s.loads.WithLabelValues(src.Name(), outcomeError).Inc()

				if policy != LoadPolicySkip {
					return fmt.Errorf("loading corpus %q: %w", src.Name(), err)
				}

				s.logger.ErrorContext(ctx, "skipping corpus source",
					slog.String("source", src.Name()),
					slog.Any("error", err),
				)

				return nil
			}

			batches[i] = items

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return report, err
	}

	for i, items := range batches {
		if report.Sources[i].Err != nil {
			continue
		}

		loaded := s.store.BulkLoad(ctx, items)
		report.Total += len(loaded)
		s.loads.WithLabelValues(report.Sources[i].Name, outcomeOK).Inc()

		s.logger.InfoContext(ctx, "corpus loaded",
			slog.String("source", report.Sources[i].Name),
			slog.Int("quotes", len(loaded)),
			slog.Duration("duration", report.Sources[i].Duration),
		)
	}

	span.SetAttributes(attribute.Int("quotes.loaded", report.Total))

	if s.store.Len() == 0 {
		causes := make([]error, 0, len(sources))
		for _, failed := range report.Failed() {
			causes = append(causes, failed.Err)
		}

		err := domain.NewCorpusError("*", "no quotes loaded", errors.Join(causes...))
		span.SetStatus(codes.Error, err.Error())

		return report, err
	}

	return report, nil
}
