package domain

// NoLimit is the Pagination.Limit value meaning "no upper bound".
const NoLimit = -1

// QuoteItem is a single quotation as read from a corpus.
// It is a value type and is never mutated after parsing.
type QuoteItem struct {
	// Quote is the quoted line.
	Quote string

	// Author is the character or person who said it.
	Author string

	// Movie is the canonical movie title. Empty when the corpus carries none.
	Movie string
}

// Quote is a QuoteItem that has been assigned a store identifier.
type Quote struct {
	// ID is assigned once at load time and never reused.
	ID uint64

	QuoteItem
}

// Pagination restricts a read to a window of the ordered store.
type Pagination struct {
	Offset int
	Limit  int
}

// DefaultPagination returns the window covering every item.
func DefaultPagination() Pagination {
	return Pagination{Offset: 0, Limit: NoLimit}
}

// Window returns the half-open index range [start, end) that p selects from
// a sequence of total items. Out-of-range values clamp to an empty window.
func (p Pagination) Window(total int) (start, end int) {
	start = max(p.Offset, 0)
	if start >= total {
		return total, total
	}

	end = total
	if p.Limit >= 0 && p.Limit < end-start {
		end = start + p.Limit
	}

	return start, end
}
