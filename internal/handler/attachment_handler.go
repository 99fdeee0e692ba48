package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padauklog/internal/service"
)

type attachmentPayload struct {
	PostID    uint   `json:"post_id"`
	Type      string `json:"type"`
	TitleMM   string `json:"title_mm"`
	TitleEN   string `json:"title_en"`
	FileURL   string `json:"file_url"`
	SizeLabel string `json:"size_label"`
}

func attachmentErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrAttachmentNotFound), errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAttachmentInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListPostAttachments returns the attachments of one post.
func (a *API) ListPostAttachments(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	attachments, err := a.attachments.ListByPost(postID)
	if err != nil {
		respondError(c, attachmentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"attachments": attachments})
}

func (a *API) CreateAttachment(c *gin.Context) {
	var payload attachmentPayload
	if !bindJSON(c, &payload, "invalid attachment payload") {
		return
	}

	attachment, err := a.attachments.Create(service.AttachmentInput{
		PostID:    payload.PostID,
		Type:      payload.Type,
		TitleMM:   payload.TitleMM,
		TitleEN:   payload.TitleEN,
		FileURL:   payload.FileURL,
		SizeLabel: payload.SizeLabel,
	})
	if err != nil {
		respondError(c, attachmentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attachment": attachment})
}

func (a *API) DeleteAttachment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.attachments.Delete(id); err != nil {
		respondError(c, attachmentErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attachment deleted"})
}
