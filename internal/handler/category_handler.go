package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padauklog/internal/service"
)

type categoryPayload struct {
	NameMM      string `json:"name_mm"`
	NameEN      string `json:"name_en"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type categoryUpdatePayload struct {
	NameMM      *string `json:"name_mm"`
	NameEN      *string `json:"name_en"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func categoryErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCategoryNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCategorySlugTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ListCategories returns every category with its post count.
func (a *API) ListCategories(c *gin.Context) {
	categories, err := a.categories.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (a *API) CreateCategory(c *gin.Context) {
	var payload categoryPayload
	if !bindJSON(c, &payload, "invalid category payload") {
		return
	}

	category, err := a.categories.Create(service.CategoryInput{
		NameMM:      payload.NameMM,
		NameEN:      payload.NameEN,
		Slug:        payload.Slug,
		Description: payload.Description,
	})
	if err != nil {
		respondError(c, categoryErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (a *API) UpdateCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload categoryUpdatePayload
	if !bindJSON(c, &payload, "invalid category payload") {
		return
	}

	category, err := a.categories.Update(id, service.CategoryUpdate{
		NameMM:      payload.NameMM,
		NameEN:      payload.NameEN,
		Slug:        payload.Slug,
		Description: payload.Description,
	})
	if err != nil {
		respondError(c, categoryErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category; linked posts merely lose the link.
func (a *API) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.categories.Delete(id); err != nil {
		respondError(c, categoryErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
