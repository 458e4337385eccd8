package dto

import "github.com/jsamuelsen/movie-quotes/internal/domain"

// PaginationQuery is the optional offset/limit query of the list and random
// endpoints. Absent values mean "from the start" and "no limit".
type PaginationQuery struct {
	Offset *int `form:"offset" validate:"omitempty,gte=0"`
	Limit  *int `form:"limit"  validate:"omitempty,gte=0"`
}

// ToDomain applies the defaults.
func (q PaginationQuery) ToDomain() domain.Pagination {
	p := domain.DefaultPagination()

	if q.Offset != nil {
		p.Offset = *q.Offset
	}

	if q.Limit != nil {
		p.Limit = *q.Limit
	}

	return p
}
