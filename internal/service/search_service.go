package service

import (
	"strings"

	"github.com/padauklog/internal/db"
	"gorm.io/gorm"
)

const (
	searchMinQueryLength = 2
	searchPostLimit      = 5
	searchCategoryLimit  = 3
)

// SearchService backs the public search dialog.
type SearchService struct {
	db *gorm.DB
}

// NewSearchService creates a SearchService instance.
func NewSearchService(gdb *gorm.DB) *SearchService {
	return &SearchService{db: gdb}
}

// SearchResult groups the matches surfaced to the dialog.
type SearchResult struct {
	Posts      []db.Post
	Categories []db.Category
}

// Search matches the query case-insensitively against bilingual titles and
// Burmese content. Only published posts surface; categories match on names.
// Queries shorter than two characters return an empty result.
func (s *SearchService) Search(query string) (*SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	result := &SearchResult{Posts: []db.Post{}, Categories: []db.Category{}}
	if len([]rune(trimmed)) < searchMinQueryLength {
		return result, nil
	}

	like := "%" + strings.ToLower(trimmed) + "%"

	if err := s.db.Where("status = ?", db.StatusPublished).
		Where("LOWER(title_mm) LIKE ? OR LOWER(title_en) LIKE ? OR LOWER(content_mm) LIKE ?",
			like, like, like).
		Order("published_at desc, id desc").
		Limit(searchPostLimit).
		Find(&result.Posts).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("LOWER(name_mm) LIKE ? OR LOWER(name_en) LIKE ?", like, like).
		Order("name_mm asc").
		Limit(searchCategoryLimit).
		Find(&result.Categories).Error; err != nil {
		return nil, err
	}

	return result, nil
}
