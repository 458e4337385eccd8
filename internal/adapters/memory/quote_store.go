// Package memory implements the quote store in process memory.
//
// The store is created empty, bulk-loaded from one or more corpora at
// startup, and then read concurrently for the lifetime of the process.
// Nothing is persisted.
package memory

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
	"github.com/jsamuelsen/movie-quotes/internal/platform/logging"
)

// healthCheckName is the readiness checker name for the store.
const healthCheckName = "quote-store"

// errEmpty is reported by Check while nothing has been loaded.
var errEmpty = errors.New("no quotes loaded")

// QuoteStore is an in-memory ports.QuoteStore.
//
// Identifiers come from an atomic counter that is independent of mu, so id
// assignment never waits on readers. mu guards quotes and order.
type QuoteStore struct {
	nextID atomic.Uint64

	mu     sync.RWMutex
	quotes map[uint64]domain.Quote
	order  []uint64 // ascending ids, the iteration order for every read

	intN func(n int) int
}

// Option configures a QuoteStore.
type Option func(*QuoteStore)

// WithRandom replaces the uniform index source used by the random picks.
// intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(s *QuoteStore) {
		s.intN = intN
	}
}

// NewQuoteStore creates an empty store.
func NewQuoteStore(opts ...Option) *QuoteStore {
	s := &QuoteStore{
		quotes: make(map[uint64]domain.Quote),
		intN:   rand.IntN,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// List returns the quotes inside the pagination window in ascending id order.
func (s *QuoteStore) List(_ context.Context, p domain.Pagination) []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := p.Window(len(s.order))

	out := make([]domain.Quote, 0, end-start)
	for _, id := range s.order[start:end] {
		out = append(out, s.quotes[id])
	}

	return out
}

// RandomPick selects uniformly from the pagination window.
func (s *QuoteStore) RandomPick(_ context.Context, p domain.Pagination) (domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := p.Window(len(s.order))

	return s.pick(s.order[start:end])
}

// RandomPickByMovie selects uniformly among the quotes of the movie named by slug.
func (s *QuoteStore) RandomPickByMovie(_ context.Context, slug string) (domain.Quote, error) {
	title, err := domain.ResolveMovie(slug)
	if err != nil {
		return domain.Quote{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []uint64
	for _, id := range s.order {
		if s.quotes[id].Movie == title {
			candidates = append(candidates, id)
		}
	}

	q, err := s.pick(candidates)
	if err != nil {
		return domain.Quote{}, domain.NewNotFoundError("quote for movie", slug)
	}

	return q, nil
}

// pick must be called with mu held for reading.
func (s *QuoteStore) pick(ids []uint64) (domain.Quote, error) {
	switch len(ids) {
	case 0:
		return domain.Quote{}, domain.NewNotFoundError("quote", "")
	case 1:
		return s.quotes[ids[0]], nil
	default:
		return s.quotes[ids[s.intN(len(ids))]], nil
	}
}

// BulkLoad stores items under freshly assigned identifiers.
// Concurrent callers each receive distinct ids; the store stays ordered by id
// regardless of the order in which the batches land.
func (s *QuoteStore) BulkLoad(ctx context.Context, items []domain.QuoteItem) []domain.Quote {
	if len(items) == 0 {
		return []domain.Quote{}
	}

	loaded := make([]domain.Quote, len(items))
	for i, item := range items {
		loaded[i] = domain.Quote{
			ID:        s.nextID.Add(1) - 1,
			QuoteItem: item,
		}
	}

	s.mu.Lock()
	for _, q := range loaded {
		s.quotes[q.ID] = q
		s.order = append(s.order, q.ID)
	}

	if !slices.IsSorted(s.order) {
		slices.Sort(s.order)
	}

	total := len(s.order)
	s.mu.Unlock()

	logging.FromContext(ctx).DebugContext(ctx, "quotes stored",
		slog.Int("added", len(loaded)),
		slog.Int("total", total),
		slog.String("first_id", strconv.FormatUint(loaded[0].ID, 10)),
	)

	return loaded
}

// Len reports the number of stored quotes.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Name implements ports.HealthChecker.
func (s *QuoteStore) Name() string {
	return healthCheckName
}

// Check implements ports.HealthChecker. An empty store is not ready to serve.
func (s *QuoteStore) Check(context.Context) error {
	if s.Len() == 0 {
		return errEmpty
	}

	return nil
}
