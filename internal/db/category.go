package db

import "time"

// Category groups posts by topic. Deleting a category detaches it from posts
// rather than deleting them.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	NameMM      string `gorm:"not null"`
	NameEN      string
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Posts []Post `gorm:"many2many:post_categories;"`

	// PostCount is populated by list queries, not stored.
	PostCount int64 `gorm:"-"`
}

// Name returns the variant for the requested language, falling back to the
// Burmese primary.
func (c Category) Name(language string) string {
	if language == "en" && c.NameEN != "" {
		return c.NameEN
	}
	return c.NameMM
}
