package service

// DefaultPerPage is the fixed page size used by list views.
const DefaultPerPage = 10

// Pagination converts a 1-based page number into zero-based row ranges and
// derived navigation flags. It does not clamp the page against the total; an
// out-of-range page simply yields an empty result from storage.
type Pagination struct {
	Page    int
	PerPage int
	Total   int64
}

// NewPagination normalizes page and perPage, substituting sane defaults for
// non-positive values.
func NewPagination(page, perPage int, total int64) Pagination {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return Pagination{Page: page, PerPage: perPage, Total: total}
}

// Offset is the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// From is the zero-based index of the first row on the page.
func (p Pagination) From() int {
	return p.Offset()
}

// To is the zero-based inclusive index of the last row on the page.
func (p Pagination) To() int {
	return p.From() + p.PerPage - 1
}

// TotalPages is ceil(Total / PerPage).
func (p Pagination) TotalPages() int {
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// HasNextPage reports whether a later page exists. Derived, not authoritative.
func (p Pagination) HasNextPage() bool {
	return p.Page < p.TotalPages()
}

// HasPrevPage reports whether an earlier page exists.
func (p Pagination) HasPrevPage() bool {
	return p.Page > 1
}

// PageNumbers lists all page numbers for template rendering.
func (p Pagination) PageNumbers() []int {
	total := p.TotalPages()
	pages := make([]int, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, i)
	}
	return pages
}
