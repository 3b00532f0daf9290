// Package pagination slices ordered listings into fixed-size pages.
package pagination

import (
	"errors"
	"math"
	"strconv"
)

// PageSize is the number of items on every listing page.
const PageSize = 10

// Page is one page of an ordered listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Number      int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ParsePage reads a 1-based page number from a query value. Missing or
// non-numeric values yield 1. Numbers too large for an int saturate so
// Normalize clamps them to the last page like any other page past the end.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && raw[0] != '-' {
			return math.MaxInt
		}
		return 1
	}
	return n
}

// CalculateTotalPages returns the page count for totalItems, never less than 1.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	return totalPages
}

// ClampPage ensures the page number is within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Normalize clamps page against the number of pages totalItems produce.
func Normalize(page int, totalItems int64, perPage int) (normalizedPage, totalPages int) {
	totalPages = CalculateTotalPages(totalItems, perPage)
	return ClampPage(page, totalPages), totalPages
}

// Offset returns the index of the first item of a normalized page.
func Offset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// NewPage wraps items already fetched for a normalized page.
func NewPage[T any](items []T, page int, totalItems int64, perPage int) Page[T] {
	page, totalPages := Normalize(page, totalItems, perPage)
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Number:      page,
		PageSize:    perPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// Paginate cuts one page out of an in-memory ordered sequence.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	total := int64(len(items))
	page, _ = Normalize(page, total, perPage)

	start := Offset(page, perPage)
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if perPage <= 0 || end > len(items) {
		end = len(items)
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return NewPage(window, page, total, perPage)
}

// Map converts the items of p, keeping its metadata.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, f(it))
	}
	return Page[U]{
		Items:       items,
		Number:      p.Number,
		PageSize:    p.PageSize,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}
