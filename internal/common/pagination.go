package common

import "math"

// PageSize is the fixed number of rows per paginated response
const PageSize = 10

// MaxPage is the largest page whose offset fits in an int
const MaxPage = math.MaxInt/PageSize + 1

// Pagination is the pagination block of every list response
type Pagination struct {
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
}

// ListResponse is the envelope of every paginated list endpoint
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes pagination metadata for a 1-based page and a total row count
func NewPagination(page int, total int64) Pagination {
	totalPages := int(total / PageSize)
	if total%PageSize > 0 {
		totalPages++
	}
	p := Pagination{CurrentPage: page, TotalPages: totalPages}
	if page > 1 {
		prev := page - 1
		p.PreviousPage = &prev
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	return p
}

// Offset returns the row offset of a 1-based page. Pages past MaxPage saturate at
// math.MaxInt so they stay beyond any row count instead of wrapping negative.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		return math.MaxInt
	}
	return (page - 1) * PageSize
}

// NewListResponse wraps rows with pagination. A nil slice is rendered as [].
func NewListResponse[T any](rows []T, page int, total int64) *ListResponse[T] {
	if rows == nil {
		rows = []T{}
	}
	return &ListResponse[T]{Data: rows, Pagination: NewPagination(page, total)}
}
