package service

import "testing"

func TestPaginationRanges(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int64
		from       int
		to         int
		totalPages int
		hasPrev    bool
		hasNext    bool
	}{
		{name: "first page", page: 1, perPage: 10, total: 25, from: 0, to: 9, totalPages: 3, hasPrev: false, hasNext: true},
		{name: "middle page", page: 2, perPage: 10, total: 25, from: 10, to: 19, totalPages: 3, hasPrev: true, hasNext: true},
		{name: "last page", page: 3, perPage: 10, total: 25, from: 20, to: 29, totalPages: 3, hasPrev: true, hasNext: false},
		{name: "beyond last page", page: 5, perPage: 10, total: 25, from: 40, to: 49, totalPages: 3, hasPrev: true, hasNext: false},
		{name: "exact multiple", page: 2, perPage: 10, total: 20, from: 10, to: 19, totalPages: 2, hasPrev: true, hasNext: false},
		{name: "empty", page: 1, perPage: 10, total: 0, from: 0, to: 9, totalPages: 0, hasPrev: false, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			if got := p.From(); got != tt.from {
				t.Fatalf("From() = %d, want %d", got, tt.from)
			}
			if got := p.To(); got != tt.to {
				t.Fatalf("To() = %d, want %d", got, tt.to)
			}
			if got := p.TotalPages(); got != tt.totalPages {
				t.Fatalf("TotalPages() = %d, want %d", got, tt.totalPages)
			}
			if got := p.HasPrevPage(); got != tt.hasPrev {
				t.Fatalf("HasPrevPage() = %v, want %v", got, tt.hasPrev)
			}
			if got := p.HasNextPage(); got != tt.hasNext {
				t.Fatalf("HasNextPage() = %v, want %v", got, tt.hasNext)
			}
		})
	}
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(0, 0, 5)
	if p.Page != 1 {
		t.Fatalf("expected page 1, got %d", p.Page)
	}
	if p.PerPage != DefaultPerPage {
		t.Fatalf("expected per page %d, got %d", DefaultPerPage, p.PerPage)
	}
}
