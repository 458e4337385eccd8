// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the app package never imports an adapter.
//
// Conventions:
//   - Context first, even where an implementation only uses it for logging
//   - Domain types in, domain types out
//   - Failures are domain errors (ErrNotFound, ErrUnknownMovie, ErrCorpus, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
)

// QuoteStore holds the loaded quotes and answers read queries over them.
// Reads are safe to call concurrently with each other and with BulkLoad.
type QuoteStore interface {
	// List returns the quotes inside the pagination window in ascending id order.
	// An out-of-range window yields an empty slice, never an error.
	List(ctx context.Context, p domain.Pagination) []domain.Quote

	// RandomPick returns one quote chosen uniformly from the pagination window.
	// Returns domain.ErrNotFound if the window is empty.
	RandomPick(ctx context.Context, p domain.Pagination) (domain.Quote, error)

	// RandomPickByMovie returns one quote from the movie identified by slug.
	// Returns domain.ErrUnknownMovie for an unrecognised slug and
	// domain.ErrNotFound when the movie has no quotes.
	RandomPickByMovie(ctx context.Context, slug string) (domain.Quote, error)

	// BulkLoad assigns identifiers to items and stores them. It only ever adds.
	// The stored quotes are returned in the order of items.
	BulkLoad(ctx context.Context, items []domain.QuoteItem) []domain.Quote

	// Len reports how many quotes are stored.
	Len() int
}

// CorpusSource supplies quote records at startup.
// Load either returns every record of the source or an error; partial
// results are never returned.
type CorpusSource interface {
	// Name identifies the source in logs, metrics and errors.
	Name() string

	// Load reads and parses the whole source.
	// Returns a domain.CorpusError when the source is malformed or unreadable.
	Load(ctx context.Context) ([]domain.QuoteItem, error)
}
