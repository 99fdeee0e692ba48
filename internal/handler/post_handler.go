package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/padauklog/internal/service"
)

type postPayload struct {
	TitleMM       string     `json:"title_mm"`
	TitleEN       string     `json:"title_en"`
	Slug          string     `json:"slug"`
	ContentMM     string     `json:"content_mm"`
	ContentEN     string     `json:"content_en"`
	ExcerptMM     string     `json:"excerpt_mm"`
	ExcerptEN     string     `json:"excerpt_en"`
	Status        string     `json:"status"`
	Featured      bool       `json:"featured"`
	CoverImageURL string     `json:"cover_image_url"`
	PublishedAt   *time.Time `json:"published_at"`
	CategoryIDs   []uint     `json:"category_ids"`
	TagIDs        []uint     `json:"tag_ids"`
}

func (p postPayload) toInput() service.PostInput {
	return service.PostInput{
		TitleMM:       p.TitleMM,
		TitleEN:       p.TitleEN,
		Slug:          p.Slug,
		ContentMM:     p.ContentMM,
		ContentEN:     p.ContentEN,
		ExcerptMM:     p.ExcerptMM,
		ExcerptEN:     p.ExcerptEN,
		Status:        p.Status,
		Featured:      p.Featured,
		CoverImageURL: p.CoverImageURL,
		PublishedAt:   p.PublishedAt,
		CategoryIDs:   p.CategoryIDs,
		TagIDs:        p.TagIDs,
	}
}

func postErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrScheduleRequired),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrTagNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListPosts returns the admin post listing with status and search filters.
func (a *API) ListPosts(c *gin.Context) {
	filter := service.PostFilter{
		Status:  strings.TrimSpace(c.Query("status")),
		Search:  strings.TrimSpace(c.Query("search")),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("per_page", "10"), 10),
	}

	result, err := a.posts.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      result.Posts,
		"pagination": result.Pagination,
	})
}

// GetPost returns one post with its relations.
func (a *API) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost creates a post together with its category and tag links.
func (a *API) CreatePost(c *gin.Context) {
	var payload postPayload
	if !bindJSON(c, &payload, "invalid post payload") {
		return
	}

	post, err := a.posts.Create(payload.toInput())
	if err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost replaces the post fields and resynchronizes relations.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload postPayload
	if !bindJSON(c, &payload, "invalid post payload") {
		return
	}

	post, err := a.posts.Update(id, payload.toInput())
	if err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes the post plus its attachments and join rows.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.posts.Delete(id); err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// PublishPost transitions a post to published.
func (a *API) PublishPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := a.posts.Publish(id)
	if err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// UnpublishPost sends a post back to draft.
func (a *API) UnpublishPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := a.posts.Unpublish(id)
	if err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// SchedulePost queues a post for a future publish time.
func (a *API) SchedulePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload struct {
		PublishAt time.Time `json:"publish_at"`
	}
	if !bindJSON(c, &payload, "invalid schedule payload") {
		return
	}

	post, err := a.posts.Schedule(id, payload.PublishAt)
	if err != nil {
		respondError(c, postErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}
