package service

import (
	"errors"
	"testing"

	"github.com/padauklog/internal/db"
)

func TestAttachmentServiceCreateRequiresOwningPost(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAttachmentService(gdb)
	_, err := svc.Create(AttachmentInput{
		PostID:  42,
		Type:    db.AttachmentTypeZIP,
		TitleMM: "ဖိုင်",
		FileURL: "https://files.example.com/app.zip",
	})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestAttachmentServiceCreateValidatesFields(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	post, err := posts.Create(PostInput{TitleMM: "Owner"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	svc := NewAttachmentService(gdb)
	if _, err := svc.Create(AttachmentInput{PostID: post.ID, Type: db.AttachmentTypeAPK}); !errors.Is(err, ErrAttachmentInvalid) {
		t.Fatalf("expected ErrAttachmentInvalid, got %v", err)
	}
}

func TestAttachmentServiceListDownloadsOnlyPublished(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	svc := NewAttachmentService(gdb)

	published, err := posts.Create(PostInput{TitleMM: "Shipped App", Status: db.StatusPublished})
	if err != nil {
		t.Fatalf("create published post: %v", err)
	}
	draft, err := posts.Create(PostInput{TitleMM: "Unfinished App"})
	if err != nil {
		t.Fatalf("create draft post: %v", err)
	}
	bare, err := posts.Create(PostInput{TitleMM: "No Files", Status: db.StatusPublished})
	if err != nil {
		t.Fatalf("create bare post: %v", err)
	}
	_ = bare

	for _, postID := range []uint{published.ID, draft.ID} {
		if _, err := svc.Create(AttachmentInput{
			PostID:    postID,
			Type:      db.AttachmentTypeAPK,
			TitleMM:   "အက်ပ်",
			FileURL:   "https://files.example.com/app.apk",
			SizeLabel: "12 MB",
		}); err != nil {
			t.Fatalf("create attachment: %v", err)
		}
	}

	entries, err := svc.ListDownloads()
	if err != nil {
		t.Fatalf("list downloads: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 download entry, got %d", len(entries))
	}
	if entries[0].Post.ID != published.ID {
		t.Fatalf("expected the published post, got %d", entries[0].Post.ID)
	}
	if len(entries[0].Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(entries[0].Attachments))
	}
}

func TestAttachmentServiceDelete(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	post, err := posts.Create(PostInput{TitleMM: "Owner"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	svc := NewAttachmentService(gdb)
	attachment, err := svc.Create(AttachmentInput{
		PostID:  post.ID,
		Type:    db.AttachmentTypePDF,
		TitleMM: "စာအုပ်",
		FileURL: "https://files.example.com/book.pdf",
	})
	if err != nil {
		t.Fatalf("create attachment: %v", err)
	}

	if err := svc.Delete(attachment.ID); err != nil {
		t.Fatalf("delete attachment: %v", err)
	}
	if err := svc.Delete(attachment.ID); !errors.Is(err, ErrAttachmentNotFound) {
		t.Fatalf("expected ErrAttachmentNotFound, got %v", err)
	}
}
