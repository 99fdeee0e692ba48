package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padauklog/internal/service"
)

type tagPayload struct {
	NameMM string `json:"name_mm"`
	NameEN string `json:"name_en"`
	Slug   string `json:"slug"`
}

type tagUpdatePayload struct {
	NameMM *string `json:"name_mm"`
	NameEN *string `json:"name_en"`
	Slug   *string `json:"slug"`
}

func tagErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrTagNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTagNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTagSlugTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) ListTags(c *gin.Context) {
	tags, err := a.tags.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list tags")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (a *API) CreateTag(c *gin.Context) {
	var payload tagPayload
	if !bindJSON(c, &payload, "invalid tag payload") {
		return
	}

	tag, err := a.tags.Create(service.TagInput{
		NameMM: payload.NameMM,
		NameEN: payload.NameEN,
		Slug:   payload.Slug,
	})
	if err != nil {
		respondError(c, tagErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

func (a *API) UpdateTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload tagUpdatePayload
	if !bindJSON(c, &payload, "invalid tag payload") {
		return
	}

	tag, err := a.tags.Update(id, service.TagUpdate{
		NameMM: payload.NameMM,
		NameEN: payload.NameEN,
		Slug:   payload.Slug,
	})
	if err != nil {
		respondError(c, tagErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

func (a *API) DeleteTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.tags.Delete(id); err != nil {
		respondError(c, tagErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}
