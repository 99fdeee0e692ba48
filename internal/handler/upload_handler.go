package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// UploadImage stores a cover or content image and returns its URL.
// Files go to the configured object store when one is set up, or to
// the local upload directory otherwise.
func (a *API) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image in request")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read image")
		return
	}
	defer file.Close()

	// Reject files whose bytes don't decode as an image, whatever the
	// declared content type says.
	if _, _, err := image.DecodeConfig(file); err != nil {
		respondError(c, http.StatusBadRequest, "file is not a valid image")
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read image")
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	if a.store != nil {
		url, err := a.store.UploadFile("uploads/"+name, file, contentType)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to store image")
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	if err := os.MkdirAll(a.cfg.UploadDir, 0755); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create upload directory")
		return
	}
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(a.cfg.UploadDir, name)); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("%s/%s", a.cfg.UploadURLPath, name)})
}
