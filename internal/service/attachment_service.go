package service

import (
	"errors"
	"strings"

	"github.com/padauklog/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrAttachmentInvalid  = errors.New("attachment requires a type, a burmese title and a file url")
)

// AttachmentService manages downloadable files owned by posts.
type AttachmentService struct {
	db *gorm.DB
}

// NewAttachmentService creates an AttachmentService instance.
func NewAttachmentService(gdb *gorm.DB) *AttachmentService {
	return &AttachmentService{db: gdb}
}

// AttachmentInput holds the fields accepted when adding a file to a post.
type AttachmentInput struct {
	PostID    uint
	Type      string
	TitleMM   string
	TitleEN   string
	FileURL   string
	SizeLabel string
}

// DownloadEntry pairs a published post with its attachments for the public
// downloads page.
type DownloadEntry struct {
	Post        db.Post
	Attachments []db.Attachment
}

// ListByPost returns a post's attachments, oldest first.
func (s *AttachmentService) ListByPost(postID uint) ([]db.Attachment, error) {
	var attachments []db.Attachment
	if err := s.db.Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// Create validates and stores an attachment; the owning post must exist.
func (s *AttachmentService) Create(input AttachmentInput) (*db.Attachment, error) {
	fileType := strings.TrimSpace(input.Type)
	titleMM := strings.TrimSpace(input.TitleMM)
	fileURL := strings.TrimSpace(input.FileURL)
	if fileType == "" || titleMM == "" || fileURL == "" {
		return nil, ErrAttachmentInvalid
	}

	var post db.Post
	if err := s.db.First(&post, input.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	attachment := db.Attachment{
		PostID:    input.PostID,
		Type:      fileType,
		TitleMM:   titleMM,
		TitleEN:   strings.TrimSpace(input.TitleEN),
		FileURL:   fileURL,
		SizeLabel: strings.TrimSpace(input.SizeLabel),
	}
	if err := s.db.Create(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Delete removes a single attachment.
func (s *AttachmentService) Delete(id uint) error {
	result := s.db.Delete(&db.Attachment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}

// ListDownloads returns published posts that carry attachments, newest
// publication first, for the downloads page.
func (s *AttachmentService) ListDownloads() ([]DownloadEntry, error) {
	var posts []db.Post
	if err := s.db.Preload("Attachments").
		Where("status = ?", db.StatusPublished).
		Where("id IN (?)", s.db.Model(&db.Attachment{}).Select("post_id")).
		Order("published_at desc, id desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	entries := make([]DownloadEntry, 0, len(posts))
	for _, post := range posts {
		attachments := post.Attachments
		post.Attachments = nil
		entries = append(entries, DownloadEntry{Post: post, Attachments: attachments})
	}
	return entries, nil
}
