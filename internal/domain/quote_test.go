package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPagination(t *testing.T) {
	p := DefaultPagination()

	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, NoLimit, p.Limit)
}

func TestPagination_Window(t *testing.T) {
	tests := []struct {
		name      string
		p         Pagination
		total     int
		wantStart int
		wantEnd   int
	}{
		{"default covers all", DefaultPagination(), 5, 0, 5},
		{"offset and limit", Pagination{Offset: 1, Limit: 2}, 5, 1, 3},
		{"limit past end clamps", Pagination{Offset: 3, Limit: 10}, 5, 3, 5},
		{"offset at end is empty", Pagination{Offset: 5, Limit: NoLimit}, 5, 5, 5},
		{"offset past end is empty", Pagination{Offset: 50, Limit: 1}, 5, 5, 5},
		{"zero limit is empty", Pagination{Offset: 0, Limit: 0}, 5, 0, 0},
		{"negative offset treated as zero", Pagination{Offset: -2, Limit: 1}, 5, 0, 1},
		{"empty store", DefaultPagination(), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPagination_WindowLength(t *testing.T) {
	const total = 7

	for k := 0; k <= total+2; k++ {
		for m := 0; m <= total+2; m++ {
			start, end := Pagination{Offset: k, Limit: m}.Window(total)

			want := 0
			if k < total {
				want = min(m, total-k)
			}

			assert.Equal(t, want, end-start, "offset=%d limit=%d", k, m)
		}
	}
}
