// Package utils holds small helpers shared across layers that carry no
// business logic of their own.
package utils

import "strconv"

// Course and video listings paginate with page/page_size query parameters.
// The bounds live here so every listing endpoint clamps the same way.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AtoiDefault parses s as an int, returning def when s is empty or not a
// number. It backs the query-parameter parsing below; a client sending
// page=abc gets the default rather than an error.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampPage normalizes a raw page query value: empty or garbage falls back
// to the first page, and zero or negative pages are pulled up to 1.
func ClampPage(raw string) int {
	page := AtoiDefault(raw, DefaultPage)
	if page < 1 {
		page = 1
	}
	return page
}

// ClampPageSize normalizes a raw page_size query value into [1, MaxPageSize],
// defaulting to DefaultPageSize. The cap keeps a single request from pulling
// an entire course catalog in one page.
func ClampPageSize(raw string) int {
	size := AtoiDefault(raw, DefaultPageSize)
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return size
}

// TotalPages returns how many pages a listing of total rows spans at the
// given page size. Zero rows means zero pages.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
