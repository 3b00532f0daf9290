package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"3", 3},
		{"abc", 1},
		{"2.5", 1},
		{"-4", -4},
		{"0", 0},
		{"99999999999999999999", math.MaxInt},
		{"+99999999999999999999", math.MaxInt},
		{"-99999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.raw))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		perPage    int
		want       int
	}{
		{"zero items", 0, 10, 1},
		{"less than one page", 5, 10, 1},
		{"exactly one page", 10, 10, 1},
		{"one item over", 11, 10, 2},
		{"multiple pages", 25, 10, 3},
		{"zero per page", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPages(tt.totalItems, tt.perPage))
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"valid page", 3, 5, 3},
		{"below minimum", 0, 5, 1},
		{"negative page", -1, 5, 1},
		{"above maximum", 10, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.totalPages))
		})
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_TwentyFiveItems(t *testing.T) {
	items := seq(25)

	first := Paginate(items, 1, PageSize)
	assert.Equal(t, seq(10), first.Items)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, int64(25), first.TotalItems)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)

	last := Paginate(items, 3, PageSize)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, last.Items)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrevious)

	beyond := Paginate(items, 99, PageSize)
	assert.Equal(t, last, beyond)

	below := Paginate(items, -3, PageSize)
	assert.Equal(t, first, below)

	overflow := Paginate(items, ParsePage("99999999999999999999"), PageSize)
	assert.Equal(t, last, overflow)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string{}, 4, PageSize)

	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrevious)
}

func TestNewPageAndMap(t *testing.T) {
	p := NewPage([]int{11, 12}, 5, 12, PageSize)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasPrevious)

	doubled := Map(p, func(n int) int { return n * 2 })
	assert.Equal(t, []int{22, 24}, doubled.Items)
	assert.Equal(t, p.Number, doubled.Number)
	assert.Equal(t, p.TotalItems, doubled.TotalItems)
	assert.Equal(t, p.TotalPages, doubled.TotalPages)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10))
}
