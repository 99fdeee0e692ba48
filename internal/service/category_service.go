package service

import (
	"errors"
	"strings"

	"github.com/padauklog/internal/db"
	"github.com/padauklog/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCategoryNameRequired = errors.New("burmese category name is required")
	ErrCategorySlugTaken    = errors.New("category slug already exists")
)

// CategoryService wraps category related operations.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// CategoryInput holds the fields accepted on create.
type CategoryInput struct {
	NameMM      string
	NameEN      string
	Slug        string
	Description string
}

// CategoryUpdate carries a partial field set; nil fields are left untouched.
type CategoryUpdate struct {
	NameMM      *string
	NameEN      *string
	Slug        *string
	Description *string
}

// List returns all categories with their published post counts.
func (s *CategoryService) List() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Model(&db.Category{}).
		Select("categories.*, COUNT(post_categories.post_id) AS post_count").
		Joins("LEFT JOIN post_categories ON post_categories.category_id = categories.id").
		Group("categories.id").
		Order("categories.name_mm asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get fetches a category by id.
func (s *CategoryService) Get(id uint) (*db.Category, error) {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug fetches a category for the public site.
func (s *CategoryService) GetBySlug(categorySlug string) (*db.Category, error) {
	var category db.Category
	if err := s.db.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category, deriving the slug from the Burmese name when the
// caller leaves it empty.
func (s *CategoryService) Create(input CategoryInput) (*db.Category, error) {
	nameMM := strings.TrimSpace(input.NameMM)
	if nameMM == "" {
		return nil, ErrCategoryNameRequired
	}

	categorySlug := slug.Make(input.Slug)
	if categorySlug == "" {
		categorySlug = slug.Make(nameMM)
	}
	if categorySlug == "" {
		return nil, ErrCategoryNameRequired
	}

	var existing db.Category
	if err := s.db.Where("slug = ?", categorySlug).First(&existing).Error; err == nil {
		return nil, ErrCategorySlugTaken
	}

	category := db.Category{
		NameMM:      nameMM,
		NameEN:      strings.TrimSpace(input.NameEN),
		Slug:        categorySlug,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies only the supplied fields to an existing category.
func (s *CategoryService) Update(id uint, update CategoryUpdate) (*db.Category, error) {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.NameMM != nil {
		nameMM := strings.TrimSpace(*update.NameMM)
		if nameMM == "" {
			return nil, ErrCategoryNameRequired
		}
		changes["name_mm"] = nameMM
	}
	if update.NameEN != nil {
		changes["name_en"] = strings.TrimSpace(*update.NameEN)
	}
	if update.Slug != nil {
		newSlug := slug.Make(*update.Slug)
		if newSlug == "" {
			return nil, ErrCategoryNameRequired
		}
		var existing db.Category
		if err := s.db.Where("slug = ? AND id <> ?", newSlug, id).First(&existing).Error; err == nil {
			return nil, ErrCategorySlugTaken
		}
		changes["slug"] = newSlug
	}
	if update.Description != nil {
		changes["description"] = strings.TrimSpace(*update.Description)
	}

	if len(changes) == 0 {
		return &category, nil
	}

	if err := s.db.Model(&category).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a category and its join rows. Posts that referenced it are
// detached, never deleted.
func (s *CategoryService) Delete(id uint) error {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	return s.db.Select(clause.Associations).Delete(&category).Error
}
