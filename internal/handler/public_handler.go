package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/padauklog/internal/service"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const (
	visitorCookieName   = "pk_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60

	homePerPage     = 10
	featuredLimit   = 4
	categoryPerPage = 10
)

func renderMarkdown(source string) (template.HTML, error) {
	var buf strings.Builder
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.Sanitize(buf.String())), nil
}

// ShowHome renders the localized home page with featured and recent posts.
func (a *API) ShowHome(c *gin.Context) {
	lang := CurrentLanguage(c)
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	result, err := a.posts.ListPublished(page, homePerPage)
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "home.html", gin.H{
			"title": "Padauk Log",
			"error": "failed to load posts",
			"year":  time.Now().Year(),
		})
		return
	}

	featured, err := a.posts.ListFeatured(featuredLimit)
	if err != nil {
		featured = nil
	}

	categories, err := a.categories.List()
	if err != nil {
		categories = nil
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":      "Padauk Log",
		"lang":       lang,
		"langSwitch": buildLanguageSwitch(c),
		"posts":      result.Posts,
		"featured":   featured,
		"categories": categories,
		"pagination": result.Pagination,
		"year":       time.Now().Year(),
	})
}

// ShowPost renders a published post with sanitized markdown content.
func (a *API) ShowPost(c *gin.Context) {
	lang := CurrentLanguage(c)
	postSlug := c.Param("slug")

	post, err := a.posts.GetPublishedBySlug(postSlug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load post")
		return
	}

	content, err := renderMarkdown(post.Content(lang))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to render post")
		return
	}

	a.renderHTML(c, http.StatusOK, "post.html", gin.H{
		"title":       post.Title(lang),
		"lang":        lang,
		"langSwitch":  buildLanguageSwitch(c),
		"post":        post,
		"content":     content,
		"excerpt":     post.Excerpt(lang),
		"attachments": post.Attachments,
		"year":        time.Now().Year(),
	})
}

// ShowCategories renders the category index with post counts.
func (a *API) ShowCategories(c *gin.Context) {
	lang := CurrentLanguage(c)

	categories, err := a.categories.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load categories")
		return
	}

	a.renderHTML(c, http.StatusOK, "categories.html", gin.H{
		"title":      "Categories",
		"lang":       lang,
		"langSwitch": buildLanguageSwitch(c),
		"categories": categories,
		"year":       time.Now().Year(),
	})
}

// ShowCategory lists published posts inside one category.
func (a *API) ShowCategory(c *gin.Context) {
	lang := CurrentLanguage(c)
	categorySlug := c.Param("slug")
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	category, err := a.categories.GetBySlug(categorySlug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load category")
		return
	}

	result, err := a.posts.ListPublishedByCategory(category.ID, page, categoryPerPage)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load category posts")
		return
	}

	a.renderHTML(c, http.StatusOK, "category.html", gin.H{
		"title":      category.Name(lang),
		"lang":       lang,
		"langSwitch": buildLanguageSwitch(c),
		"category":   category,
		"posts":      result.Posts,
		"pagination": result.Pagination,
		"year":       time.Now().Year(),
	})
}

// ShowDownloads lists published posts that carry file attachments.
func (a *API) ShowDownloads(c *gin.Context) {
	lang := CurrentLanguage(c)

	entries, err := a.attachments.ListDownloads()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load downloads")
		return
	}

	a.renderHTML(c, http.StatusOK, "downloads.html", gin.H{
		"title":      "Downloads",
		"lang":       lang,
		"langSwitch": buildLanguageSwitch(c),
		"entries":    entries,
		"year":       time.Now().Year(),
	})
}

// SearchContent answers the live search box with posts and categories.
func (a *API) SearchContent(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	result, err := a.search.Search(query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      result.Posts,
		"categories": result.Categories,
	})
}

// TrackPostView counts a view once per visitor per post per year.
func (a *API) TrackPostView(c *gin.Context) {
	var payload struct {
		Slug string `json:"slug"`
	}
	if !bindJSON(c, &payload, "invalid view payload") {
		return
	}

	visitorID, err := c.Cookie(visitorCookieName)
	if err != nil || visitorID == "" {
		visitorID = uuid.New().String()
		c.SetCookie(visitorCookieName, visitorID, visitorCookieMaxAge, "/", "", false, true)
	}

	counted, err := a.views.TrackView(c.Request.Context(), payload.Slug, visitorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to track view")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"counted": counted})
}
