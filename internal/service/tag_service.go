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
	ErrTagNameRequired = errors.New("burmese tag name is required")
	ErrTagSlugTaken    = errors.New("tag slug already exists")
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// TagInput holds the fields accepted on create.
type TagInput struct {
	NameMM string
	NameEN string
	Slug   string
}

// TagUpdate carries a partial field set; nil fields are left untouched.
type TagUpdate struct {
	NameMM *string
	NameEN *string
	Slug   *string
}

// List returns all tags with their post counts.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Model(&db.Tag{}).
		Select("tags.*, COUNT(post_tags.post_id) AS post_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Group("tags.id").
		Order("tags.name_mm asc").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a tag, deriving the slug from the Burmese name when absent.
func (s *TagService) Create(input TagInput) (*db.Tag, error) {
	nameMM := strings.TrimSpace(input.NameMM)
	if nameMM == "" {
		return nil, ErrTagNameRequired
	}

	tagSlug := slug.Make(input.Slug)
	if tagSlug == "" {
		tagSlug = slug.Make(nameMM)
	}
	if tagSlug == "" {
		return nil, ErrTagNameRequired
	}

	var existing db.Tag
	if err := s.db.Where("slug = ?", tagSlug).First(&existing).Error; err == nil {
		return nil, ErrTagSlugTaken
	}

	tag := db.Tag{
		NameMM: nameMM,
		NameEN: strings.TrimSpace(input.NameEN),
		Slug:   tagSlug,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update applies only the supplied fields to an existing tag.
func (s *TagService) Update(id uint, update TagUpdate) (*db.Tag, error) {
	var tag db.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.NameMM != nil {
		nameMM := strings.TrimSpace(*update.NameMM)
		if nameMM == "" {
			return nil, ErrTagNameRequired
		}
		changes["name_mm"] = nameMM
	}
	if update.NameEN != nil {
		changes["name_en"] = strings.TrimSpace(*update.NameEN)
	}
	if update.Slug != nil {
		newSlug := slug.Make(*update.Slug)
		if newSlug == "" {
			return nil, ErrTagNameRequired
		}
		var existing db.Tag
		if err := s.db.Where("slug = ? AND id <> ?", newSlug, id).First(&existing).Error; err == nil {
			return nil, ErrTagSlugTaken
		}
		changes["slug"] = newSlug
	}

	if len(changes) == 0 {
		return &tag, nil
	}

	if err := s.db.Model(&tag).Updates(changes).Error; err != nil {
		return nil, err
	}

	var updated db.Tag
	if err := s.db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a tag and its join rows. Posts keep existing; tagging is
// detach-only.
func (s *TagService) Delete(id uint) error {
	var tag db.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	return s.db.Select(clause.Associations).Delete(&tag).Error
}
