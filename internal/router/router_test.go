package router

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
	"github.com/padauklog/internal/handler"
	"github.com/padauklog/internal/service"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	api := handler.NewAPI(gdb, nil, nil, config.AppConfig{})
	return SetupRouter(api, "test-secret"), gdb
}

func TestRootRedirectsToDefaultLocale(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/my" {
		t.Fatalf("expected redirect to /my, got %q", location)
	}
}

func TestRootHonorsEnglishAcceptLanguage(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	r.ServeHTTP(w, req)

	if location := w.Header().Get("Location"); location != "/en" {
		t.Fatalf("expected redirect to /en, got %q", location)
	}
}

func TestUnknownLocaleIsNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fr", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unsupported locale, got %d", w.Code)
	}
}

func TestAdminDashboardRequiresSession(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", location)
	}
}

func TestAdminAPIRequiresSession(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/posts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect for unauthenticated API call, got %d", w.Code)
	}
}

func TestTrackViewEndpoint(t *testing.T) {
	r, gdb := setupTestRouter(t)

	posts := service.NewPostService(gdb)
	post, err := posts.Create(service.PostInput{TitleMM: "Viewed Post", Status: db.StatusPublished})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"slug": post.Slug})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/view", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded db.Post
	if err := gdb.First(&reloaded, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if reloaded.ViewCount != 1 {
		t.Fatalf("expected view_count=1, got %d", reloaded.ViewCount)
	}
}

func TestTrackViewUnknownSlug(t *testing.T) {
	r, _ := setupTestRouter(t)

	body, _ := json.Marshal(map[string]string{"slug": "does-not-exist"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/view", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestTrackViewMissingSlug(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/view", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	r, gdb := setupTestRouter(t)

	posts := service.NewPostService(gdb)
	if _, err := posts.Create(service.PostInput{TitleMM: "Padauk Season", Status: db.StatusPublished}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=padauk", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var response struct {
		Posts []db.Post `json:"posts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(response.Posts))
	}
}

func TestPing(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
