package service

import (
	"context"
	"errors"
	"testing"

	"github.com/padauklog/internal/db"
)

func TestViewServiceTrackViewIncrements(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	post, err := posts.Create(PostInput{TitleMM: "Counted", Status: db.StatusPublished})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	svc := NewViewService(gdb, nil)
	for i := 0; i < 3; i++ {
		counted, err := svc.TrackView(context.Background(), post.Slug, "visitor-1")
		if err != nil {
			t.Fatalf("track view: %v", err)
		}
		if !counted {
			t.Fatal("expected the view to count without a dedup store")
		}
	}

	var reloaded db.Post
	if err := gdb.First(&reloaded, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if reloaded.ViewCount != 3 {
		t.Fatalf("expected view_count=3, got %d", reloaded.ViewCount)
	}
}

func TestViewServiceTrackViewRequiresSlug(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewViewService(gdb, nil)
	if _, err := svc.TrackView(context.Background(), "", "visitor-1"); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}

func TestViewServiceTrackViewUnknownSlug(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewViewService(gdb, nil)
	if _, err := svc.TrackView(context.Background(), "missing", "visitor-1"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
