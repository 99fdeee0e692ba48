package db

import "time"

// Tag is a free-form label attached to posts.
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	NameMM    string `gorm:"not null"`
	NameEN    string
	Slug      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []Post `gorm:"many2many:post_tags;"`

	// PostCount is populated by list queries, not stored.
	PostCount int64 `gorm:"-"`
}

// Name returns the variant for the requested language, falling back to the
// Burmese primary.
func (t Tag) Name(language string) string {
	if language == "en" && t.NameEN != "" {
		return t.NameEN
	}
	return t.NameMM
}
