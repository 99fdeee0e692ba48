package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/padauklog/internal/db"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlugRequired is returned when the view endpoint receives no slug.
var ErrSlugRequired = errors.New("slug is required")

const viewDedupTTL = 365 * 24 * time.Hour

// ViewService increments post view counters. The counter is an approximate
// metric: duplicate suppression is best-effort per visitor and only active
// when Redis is configured.
type ViewService struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewViewService creates a ViewService. redisClient may be nil, in which case
// every call counts.
func NewViewService(gdb *gorm.DB, redisClient *redis.Client) *ViewService {
	return &ViewService{db: gdb, redis: redisClient}
}

// TrackView bumps the view counter of the post with the given slug. The
// increment runs as a single relative UPDATE so concurrent views never lose
// counts. Returns whether this call was actually counted.
func (s *ViewService) TrackView(ctx context.Context, postSlug, visitorID string) (bool, error) {
	if postSlug == "" {
		return false, ErrSlugRequired
	}

	if s.redis != nil && visitorID != "" {
		key := fmt.Sprintf("post_viewed:%s:%s", postSlug, visitorID)
		set, err := s.redis.SetNX(ctx, key, "1", viewDedupTTL).Result()
		// A Redis failure degrades to counting the view rather than losing it.
		if err == nil && !set {
			return false, nil
		}
	}

	result := s.db.WithContext(ctx).Model(&db.Post{}).
		Where("slug = ?", postSlug).
		UpdateColumn("view_count", clause.Expr{SQL: "view_count + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, ErrPostNotFound
	}
	return true, nil
}
