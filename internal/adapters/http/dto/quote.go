package dto

import "github.com/jsamuelsen/movie-quotes/internal/domain"

// QuoteResponse is the wire form of a stored quote.
type QuoteResponse struct {
	ID     uint64 `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Movie  string `json:"movie,omitempty"`
}

// MovieResponse is the wire form of a known movie.
type MovieResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		Quote:  q.Quote,
		Author: q.Author,
		Movie:  q.Movie,
	}
}

// NewQuoteListResponse converts quotes, keeping an empty list as [] on the wire.
func NewQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = NewQuoteResponse(q)
	}

	return out
}

// NewMovieListResponse converts the movie table.
func NewMovieListResponse(movies []domain.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieResponse{Slug: m.Slug, Title: m.Title}
	}

	return out
}
