package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/padauklog/internal/config"
	"github.com/padauklog/internal/service"
	"github.com/padauklog/internal/storage"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	posts       *service.PostService
	categories  *service.CategoryService
	tags        *service.TagService
	attachments *service.AttachmentService
	search      *service.SearchService
	views       *service.ViewService
	store       *storage.Client
	cfg         config.AppConfig
}

// NewAPI constructs a handler set with shared services. The redis
// client and storage client may be nil; views then count without dedup
// and uploads go to the local disk.
func NewAPI(gdb *gorm.DB, rdb *redis.Client, store *storage.Client, cfg config.AppConfig) *API {
	return &API{
		db:          gdb,
		posts:       service.NewPostService(gdb),
		categories:  service.NewCategoryService(gdb),
		tags:        service.NewTagService(gdb),
		attachments: service.NewAttachmentService(gdb),
		search:      service.NewSearchService(gdb),
		views:       service.NewViewService(gdb, rdb),
		store:       store,
		cfg:         cfg,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["lang"]; !exists {
		payload["lang"] = CurrentLanguage(c)
	}
	c.HTML(status, template, payload)
}
