package domain

// Movie pairs a URL-safe slug with the title stored on quotes.
type Movie struct {
	Slug  string
	Title string
}

// movies is the closed set of recognised movies. Add a pair to support a new one.
var movies = []Movie{
	{Slug: "new-world", Title: "신세계"},
	{Slug: "the-war-of-flower", Title: "타짜"},
	{Slug: "old-boy", Title: "올드보이"},
	{Slug: "the-man-from-nowhere", Title: "아저씨"},
	{Slug: "inside-men", Title: "내부자들"},
}

// ResolveMovie maps a slug to its canonical title.
// Returns an *UnknownMovieError for slugs outside the table.
func ResolveMovie(slug string) (string, error) {
	for _, m := range movies {
		if m.Slug == slug {
			return m.Title, nil
		}
	}

	return "", NewUnknownMovieError(slug)
}

// Movies returns a copy of the movie table in declaration order.
func Movies() []Movie {
	out := make([]Movie, len(movies))
	copy(out, movies)

	return out
}
