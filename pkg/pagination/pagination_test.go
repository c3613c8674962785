package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: -3, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 35)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
