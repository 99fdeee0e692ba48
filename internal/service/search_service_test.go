package service

import (
	"testing"

	"github.com/padauklog/internal/db"
)

func TestSearchServiceMatchesPublishedPostsOnly(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	if _, err := posts.Create(PostInput{TitleMM: "Padauk Draft Notes"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	live, err := posts.Create(PostInput{TitleMM: "Padauk Field Guide", Status: db.StatusPublished})
	if err != nil {
		t.Fatalf("create published: %v", err)
	}

	svc := NewSearchService(gdb)
	result, err := svc.Search("padauk")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Posts) != 1 || result.Posts[0].ID != live.ID {
		t.Fatalf("expected only the published post, got %d posts", len(result.Posts))
	}
}

func TestSearchServiceMatchesCategories(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	categories := NewCategoryService(gdb)
	if _, err := categories.Create(CategoryInput{NameMM: "နည်းပညာ", NameEN: "Technology", Slug: "tech"}); err != nil {
		t.Fatalf("create category: %v", err)
	}

	svc := NewSearchService(gdb)
	result, err := svc.Search("techno")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Categories) != 1 {
		t.Fatalf("expected 1 category match, got %d", len(result.Categories))
	}
}

func TestSearchServiceShortQueryReturnsNothing(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	if _, err := posts.Create(PostInput{TitleMM: "A Post", Status: db.StatusPublished}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	svc := NewSearchService(gdb)
	result, err := svc.Search("a")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Posts) != 0 || len(result.Categories) != 0 {
		t.Fatalf("expected empty result for short query, got %+v", result)
	}
}

func TestSearchServiceMatchesBurmeseContent(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	if _, err := posts.Create(PostInput{
		TitleMM:   "ခေါင်းစဉ်",
		ContentMM: "ပါဒေါက်ပန်း အကြောင်း ရေးသားထားသည်",
		Status:    db.StatusPublished,
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	svc := NewSearchService(gdb)
	result, err := svc.Search("ပါဒေါက်ပန်း")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Posts) != 1 {
		t.Fatalf("expected content match, got %d posts", len(result.Posts))
	}
}
