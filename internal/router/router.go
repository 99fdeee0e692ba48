package router

import (
	"html/template"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/padauklog/internal/handler"
)

// SetupRouter wires the gin engine: sessions, templates, the public
// locale groups, the view API, and the session-guarded admin area.
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("padauklog_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	loadTemplates(r)

	r.Static("/static", "./web/static")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Bare root goes to the default-language site.
	r.GET("/", handler.RedirectToDefaultLocale)

	site := r.Group("/:locale")
	site.Use(api.LocaleMiddleware())
	{
		site.GET("", api.ShowHome)
		site.GET("/posts/:slug", api.ShowPost)
		site.GET("/categories", api.ShowCategories)
		site.GET("/categories/:slug", api.ShowCategory)
		site.GET("/downloads", api.ShowDownloads)
	}

	publicAPI := r.Group("/api")
	{
		publicAPI.GET("/search", api.SearchContent)
		publicAPI.POST("/posts/view", api.TrackPostView)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/login", handler.RedirectIfAuthenticated(), api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)

			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/posts", api.ListPosts)
				adminAPI.GET("/posts/:id", api.GetPost)
				adminAPI.POST("/posts", api.CreatePost)
				adminAPI.PUT("/posts/:id", api.UpdatePost)
				adminAPI.DELETE("/posts/:id", api.DeletePost)
				adminAPI.POST("/posts/:id/publish", api.PublishPost)
				adminAPI.POST("/posts/:id/unpublish", api.UnpublishPost)
				adminAPI.POST("/posts/:id/schedule", api.SchedulePost)
				adminAPI.GET("/posts/:id/attachments", api.ListPostAttachments)

				adminAPI.GET("/categories", api.ListCategories)
				adminAPI.POST("/categories", api.CreateCategory)
				adminAPI.PUT("/categories/:id", api.UpdateCategory)
				adminAPI.DELETE("/categories/:id", api.DeleteCategory)

				adminAPI.GET("/tags", api.ListTags)
				adminAPI.POST("/tags", api.CreateTag)
				adminAPI.PUT("/tags/:id", api.UpdateTag)
				adminAPI.DELETE("/tags/:id", api.DeleteTag)

				adminAPI.POST("/attachments", api.CreateAttachment)
				adminAPI.DELETE("/attachments/:id", api.DeleteAttachment)

				adminAPI.POST("/uploads", api.UploadImage)
			}
		}
	}

	return r
}

// loadTemplates tolerates a missing template tree so the JSON API can
// run in environments without the web assets.
func loadTemplates(r *gin.Engine) {
	pattern := "web/template/**/*.html"
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return
	}
	r.LoadHTMLGlob(pattern)
}
