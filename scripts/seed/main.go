package main

import (
	"fmt"
	"log"
	"time"

	"github.com/padauklog/internal/config"
	"github.com/padauklog/internal/db"
	"github.com/padauklog/internal/service"
)

// Development data generator: an admin user, a few categories and tags,
// and sample bilingual posts in every publication state.
func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := db.EnsureUser(gdb, "admin", "admin123"); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	categories := service.NewCategoryService(gdb)
	tags := service.NewTagService(gdb)
	posts := service.NewPostService(gdb)
	attachments := service.NewAttachmentService(gdb)

	var categoryIDs []uint
	for _, input := range []service.CategoryInput{
		{NameMM: "နည်းပညာ", NameEN: "Technology", Slug: "technology"},
		{NameMM: "ဘဝနေထိုင်မှု", NameEN: "Lifestyle", Slug: "lifestyle"},
		{NameMM: "ခရီးသွား", NameEN: "Travel", Slug: "travel"},
	} {
		category, err := categories.Create(input)
		if err != nil {
			log.Printf("skip category %s: %v", input.Slug, err)
			continue
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	var tagIDs []uint
	for _, input := range []service.TagInput{
		{NameMM: "အန်းဒရိုက်", NameEN: "Android", Slug: "android"},
		{NameMM: "ဂိုလန်း", NameEN: "Go", Slug: "go"},
		{NameMM: "ရန်ကုန်", NameEN: "Yangon", Slug: "yangon"},
	} {
		tag, err := tags.Create(input)
		if err != nil {
			log.Printf("skip tag %s: %v", input.Slug, err)
			continue
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	published, err := posts.Create(service.PostInput{
		TitleMM:     "ပထမဆုံး ပို့စ်",
		TitleEN:     "Hello World",
		ContentMM:   "# မင်္ဂလာပါ\n\nဤသည်မှာ ပထမဆုံး ပို့စ် ဖြစ်သည်။",
		ContentEN:   "# Hello\n\nThis is the first post.",
		ExcerptMM:   "မိတ်ဆက် ပို့စ်",
		ExcerptEN:   "An introduction",
		Status:      db.StatusPublished,
		Featured:    true,
		CategoryIDs: categoryIDs,
		TagIDs:      tagIDs,
	})
	if err != nil {
		log.Fatalf("failed to create published post: %v", err)
	}

	if _, err := attachments.Create(service.AttachmentInput{
		PostID:    published.ID,
		Type:      db.AttachmentTypeAPK,
		TitleMM:   "နမူနာ အက်ပ်",
		TitleEN:   "Sample App",
		FileURL:   "https://files.example.com/sample.apk",
		SizeLabel: "8 MB",
	}); err != nil {
		log.Printf("skip attachment: %v", err)
	}

	if _, err := posts.Create(service.PostInput{
		TitleMM: "မပြီးသေးသော စာ",
		TitleEN: "Work In Progress",
	}); err != nil {
		log.Printf("skip draft: %v", err)
	}

	scheduled, err := posts.Create(service.PostInput{
		TitleMM: "နောက်အပတ် ထုတ်မည်",
		TitleEN: "Coming Next Week",
	})
	if err == nil {
		if _, err := posts.Schedule(scheduled.ID, time.Now().Add(7*24*time.Hour)); err != nil {
			log.Printf("skip schedule: %v", err)
		}
	}

	fmt.Println("seed data ready")
	fmt.Println("admin user: admin / admin123")
}
