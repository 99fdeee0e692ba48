package db

import "time"

// Attachment file types offered for download.
const (
	AttachmentTypeAPK = "apk"
	AttachmentTypePDF = "pdf"
	AttachmentTypeZIP = "zip"
)

// Attachment is a downloadable file owned by a post. Rows are removed together
// with their owning post.
type Attachment struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"index;not null"`
	Type      string `gorm:"not null"`
	TitleMM   string `gorm:"not null"`
	TitleEN   string
	FileURL   string `gorm:"not null"`
	SizeLabel string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Title returns the variant for the requested language, falling back to the
// Burmese primary.
func (a Attachment) Title(language string) string {
	if language == "en" && a.TitleEN != "" {
		return a.TitleEN
	}
	return a.TitleMM
}
