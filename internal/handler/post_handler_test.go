package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/padauklog/internal/config"
	"github.com/padauklog/internal/db"
	"github.com/padauklog/internal/service"
)

func setupTestAPI(t *testing.T) (*API, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	api := NewAPI(gdb, nil, nil, config.AppConfig{})
	r := gin.New()
	r.GET("/posts", api.ListPosts)
	r.GET("/posts/:id", api.GetPost)
	r.POST("/posts", api.CreatePost)
	r.PUT("/posts/:id", api.UpdatePost)
	r.DELETE("/posts/:id", api.DeletePost)
	r.POST("/posts/:id/publish", api.PublishPost)
	r.POST("/posts/:id/unpublish", api.UnpublishPost)
	r.POST("/posts/:id/schedule", api.SchedulePost)
	return api, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePostEndpoint(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/posts", map[string]interface{}{
		"title_mm":   "ပထမဆုံး ပို့စ်",
		"title_en":   "First Post",
		"content_mm": "စာသား",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Post db.Post `json:"post"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Post.Status != db.StatusDraft {
		t.Fatalf("new posts must start as drafts, got %q", response.Post.Status)
	}
	if response.Post.Slug == "" {
		t.Fatal("expected a derived slug")
	}
}

func TestCreatePostRejectsMissingTitle(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/posts", map[string]interface{}{
		"title_en": "English only",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreatePostUnknownCategoryRollsBack(t *testing.T) {
	api, r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/posts", map[string]interface{}{
		"title_mm":     "Broken Links",
		"category_ids": []uint{99},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var count int64
	api.DB().Model(&db.Post{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rollback, found %d posts", count)
	}
}

func TestPublishEndpointStampsTimestamp(t *testing.T) {
	_, r := setupTestAPI(t)

	created := doJSON(t, r, http.MethodPost, "/posts", map[string]interface{}{
		"title_mm": "Going Live",
	})
	var createdResponse struct {
		Post db.Post `json:"post"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &createdResponse); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	id := createdResponse.Post.ID

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/publish", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Post db.Post `json:"post"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Post.Status != db.StatusPublished {
		t.Fatalf("expected published, got %q", response.Post.Status)
	}
	if response.Post.PublishedAt == nil {
		t.Fatal("expected published_at to be stamped")
	}
}

func TestScheduleEndpointRejectsPastTime(t *testing.T) {
	_, r := setupTestAPI(t)

	created := doJSON(t, r, http.MethodPost, "/posts", map[string]interface{}{
		"title_mm": "Later",
	})
	var createdResponse struct {
		Post db.Post `json:"post"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &createdResponse); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/schedule", createdResponse.Post.ID), map[string]interface{}{
		"publish_at": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetPostNotFound(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/posts/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeletePostEndpoint(t *testing.T) {
	api, r := setupTestAPI(t)

	posts := service.NewPostService(api.DB())
	post, err := posts.Create(service.PostInput{TitleMM: "Doomed"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
