package service

import (
	"errors"
	"strings"
	"time"

	"github.com/padauklog/internal/db"
	"github.com/padauklog/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrTitleRequired    = errors.New("burmese title is required")
	ErrInvalidStatus    = errors.New("invalid post status")
	ErrScheduleRequired = errors.New("scheduled posts require a future publish time")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
)

// PostService wraps post related database operations, including the
// publication lifecycle and category/tag relation sync.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// PostInput represents fields accepted when creating or updating a post.
// CategoryIDs and TagIDs are the full target sets; existing links not listed
// are removed.
type PostInput struct {
	TitleMM       string
	TitleEN       string
	Slug          string
	ContentMM     string
	ContentEN     string
	ExcerptMM     string
	ExcerptEN     string
	Status        string
	Featured      bool
	CoverImageURL string
	PublishedAt   *time.Time
	CategoryIDs   []uint
	TagIDs        []uint
}

// PostFilter describes filters for admin listings.
type PostFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

// PostListResult aggregates a page of posts with pagination data.
type PostListResult struct {
	Posts      []db.Post
	Pagination Pagination
}

// Get fetches a post by id with its relations preloaded.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Categories").Preload("Tags").Preload("Attachments").
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug fetches a published post for the public site.
func (s *PostService) GetPublishedBySlug(postSlug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Categories").Preload("Tags").Preload("Attachments").
		Where("slug = ? AND status = ?", postSlug, db.StatusPublished).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create validates and persists a new post together with its relations.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	post := db.Post{}
	if err := s.apply(&post, input); err != nil {
		return nil, err
	}
	return s.saveWithRelations(&post, input)
}

// Update applies the full input to an existing post. The relation sets replace
// whatever links the post had before.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if err := s.apply(&existing, input); err != nil {
		return nil, err
	}
	return s.saveWithRelations(&existing, input)
}

// apply copies input onto the post and enforces the validation rules shared by
// create and update. The slug is derived from the Burmese title when absent.
func (s *PostService) apply(post *db.Post, input PostInput) error {
	titleMM := strings.TrimSpace(input.TitleMM)
	if titleMM == "" {
		return ErrTitleRequired
	}

	postSlug := strings.TrimSpace(input.Slug)
	if slug.ShouldUpdate(postSlug, post.TitleMM) {
		postSlug = slug.Make(titleMM)
	} else {
		postSlug = slug.Make(postSlug)
	}
	if postSlug == "" {
		return ErrTitleRequired
	}

	status := input.Status
	if status == "" {
		status = db.StatusDraft
	}
	switch status {
	case db.StatusDraft, db.StatusPublished:
	case db.StatusScheduled:
		if input.PublishedAt == nil || !input.PublishedAt.After(time.Now()) {
			return ErrScheduleRequired
		}
	default:
		return ErrInvalidStatus
	}

	post.TitleMM = titleMM
	post.TitleEN = strings.TrimSpace(input.TitleEN)
	post.Slug = postSlug
	post.ContentMM = input.ContentMM
	post.ContentEN = input.ContentEN
	post.ExcerptMM = strings.TrimSpace(input.ExcerptMM)
	post.ExcerptEN = strings.TrimSpace(input.ExcerptEN)
	post.Status = status
	post.Featured = input.Featured
	post.CoverImageURL = strings.TrimSpace(input.CoverImageURL)

	if input.PublishedAt != nil {
		post.PublishedAt = input.PublishedAt
	}
	// Saving directly as published stamps the publish time once.
	if status == db.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	return nil
}

// saveWithRelations persists the post and synchronizes both relation sets in
// one transaction, so a failed sync rolls the upsert back.
func (s *PostService) saveWithRelations(post *db.Post, input PostInput) (*db.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}
		if err := syncPostCategories(tx, post.ID, input.CategoryIDs); err != nil {
			return err
		}
		return syncPostTags(tx, post.ID, input.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(post.ID)
}

// syncPostCategories replaces the post's category links with exactly the
// target set: delete everything, then bulk-insert the new rows. Not a minimal
// diff on purpose.
func syncPostCategories(tx *gorm.DB, postID uint, categoryIDs []uint) error {
	if err := tx.Where("post_id = ?", postID).Delete(&db.PostCategory{}).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&db.Category{}).Where("id IN ?", categoryIDs).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(categoryIDs)) {
		return ErrCategoryNotFound
	}

	links := make([]db.PostCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, db.PostCategory{PostID: postID, CategoryID: id})
	}
	return tx.Create(&links).Error
}

// syncPostTags mirrors syncPostCategories for tag links.
func syncPostTags(tx *gorm.DB, postID uint, tagIDs []uint) error {
	if err := tx.Where("post_id = ?", postID).Delete(&db.PostTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&db.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return ErrTagNotFound
	}

	links := make([]db.PostTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		links = append(links, db.PostTag{PostID: postID, TagID: id})
	}
	return tx.Create(&links).Error
}

// Publish moves a draft or scheduled post to published. The publish timestamp
// is stamped only when absent, so republishing keeps the original date.
func (s *PostService) Publish(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"status":     db.StatusPublished,
		"updated_at": time.Now(),
	}
	if post.PublishedAt == nil {
		updates["published_at"] = time.Now()
	}

	if err := s.db.Model(&db.Post{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Unpublish reverts a post to draft. The publish timestamp is kept for
// history.
func (s *PostService) Unpublish(id uint) (*db.Post, error) {
	result := s.db.Model(&db.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     db.StatusDraft,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPostNotFound
	}
	return s.Get(id)
}

// Schedule marks a post for future publication at the supplied time. There is
// no automatic promotion when the time elapses; an editor publishes
// explicitly.
func (s *PostService) Schedule(id uint, publishAt time.Time) (*db.Post, error) {
	if publishAt.IsZero() || !publishAt.After(time.Now()) {
		return nil, ErrScheduleRequired
	}

	result := s.db.Model(&db.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       db.StatusScheduled,
		"published_at": publishAt,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPostNotFound
	}
	return s.Get(id)
}

// Delete removes a post along with its attachments and relation rows.
func (s *PostService) Delete(id uint) error {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	return s.db.Select(clause.Associations).Delete(&post).Error
}

// List provides paginated posts for the admin panel; all statuses surface.
func (s *PostService) List(filter PostFilter) (*PostListResult, error) {
	applyFilters := func(query *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Search != "" {
			like := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where(
				"LOWER(title_mm) LIKE ? OR LOWER(title_en) LIKE ? OR LOWER(content_mm) LIKE ?",
				like, like, like,
			)
		}
		return query
	}

	var total int64
	if err := applyFilters(s.db.Model(&db.Post{})).Count(&total).Error; err != nil {
		return nil, err
	}

	pagination := NewPagination(filter.Page, filter.PerPage, total)

	var posts []db.Post
	if err := applyFilters(s.db.Model(&db.Post{})).Preload("Categories").
		Order("created_at desc").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	return &PostListResult{Posts: posts, Pagination: pagination}, nil
}

// ListPublished provides paginated published posts for the public site,
// newest publication first.
func (s *PostService) ListPublished(page, perPage int) (*PostListResult, error) {
	var total int64
	if err := s.db.Model(&db.Post{}).Where("status = ?", db.StatusPublished).
		Count(&total).Error; err != nil {
		return nil, err
	}

	pagination := NewPagination(page, perPage, total)

	var posts []db.Post
	if err := s.db.Model(&db.Post{}).Where("status = ?", db.StatusPublished).
		Preload("Categories").
		Order("published_at desc, id desc").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	return &PostListResult{Posts: posts, Pagination: pagination}, nil
}

// ListPublishedByCategory provides published posts within one category.
func (s *PostService) ListPublishedByCategory(categoryID uint, page, perPage int) (*PostListResult, error) {
	inCategory := func() *gorm.DB {
		return s.db.Model(&db.Post{}).
			Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Where("post_categories.category_id = ? AND posts.status = ?", categoryID, db.StatusPublished)
	}

	var total int64
	if err := inCategory().Count(&total).Error; err != nil {
		return nil, err
	}

	pagination := NewPagination(page, perPage, total)

	var posts []db.Post
	if err := inCategory().Preload("Categories").
		Order("posts.published_at desc, posts.id desc").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	return &PostListResult{Posts: posts, Pagination: pagination}, nil
}

// ListFeatured returns the newest featured published posts for the home hero.
func (s *PostService) ListFeatured(limit int) ([]db.Post, error) {
	if limit <= 0 {
		limit = 3
	}
	var posts []db.Post
	if err := s.db.Where("status = ? AND featured = ?", db.StatusPublished, true).
		Order("published_at desc, id desc").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByStatus returns the number of posts in the given status, or all posts
// when status is empty.
func (s *PostService) CountByStatus(status string) (int64, error) {
	query := s.db.Model(&db.Post{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalViews sums the view counters across all posts.
func (s *PostService) TotalViews() (int64, error) {
	var total int64
	if err := s.db.Model(&db.Post{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
