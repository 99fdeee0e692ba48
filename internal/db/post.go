package db

import "time"

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// Post is the article model. Content is stored per language; the Burmese
// variant is the required primary one.
type Post struct {
	ID            uint   `gorm:"primaryKey"`
	TitleMM       string `gorm:"not null"`
	TitleEN       string
	Slug          string `gorm:"uniqueIndex;not null"`
	ContentMM     string
	ContentEN     string
	ExcerptMM     string
	ExcerptEN     string
	Status        string `gorm:"index;default:draft"`
	Featured      bool   `gorm:"default:false"`
	CoverImageURL string
	PublishedAt   *time.Time
	ViewCount     uint64 `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE"`
	Categories  []Category   `gorm:"many2many:post_categories;"`
	Tags        []Tag        `gorm:"many2many:post_tags;"`
}

// Title returns the variant for the requested language, falling back to the
// Burmese primary.
func (p Post) Title(language string) string {
	if language == "en" && p.TitleEN != "" {
		return p.TitleEN
	}
	return p.TitleMM
}

// Content returns the variant for the requested language, falling back to the
// Burmese primary.
func (p Post) Content(language string) string {
	if language == "en" && p.ContentEN != "" {
		return p.ContentEN
	}
	return p.ContentMM
}

// Excerpt returns the variant for the requested language, falling back to the
// Burmese primary.
func (p Post) Excerpt(language string) string {
	if language == "en" && p.ExcerptEN != "" {
		return p.ExcerptEN
	}
	return p.ExcerptMM
}
