package api

import (
	"net/http"

	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaHandler brokers presigned URLs for avatar and demo-video uploads.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// --- DTOs ---

type UploadURLRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type UploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
}

// --- Handler Methods ---

// CreateUploadURL returns a presigned PUT URL the browser uploads to directly.
func (h *MediaHandler) CreateUploadURL(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	target, err := h.mediaService.CreateUploadURL(c.Request.Context(), coachID, req.FileName, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL")
		return
	}

	c.JSON(http.StatusOK, UploadURLResponse{
		UploadURL: target.UploadURL,
		ObjectKey: target.ObjectKey,
	})
}

// CreateViewURL returns a presigned GET URL for a previously uploaded object.
func (h *MediaHandler) CreateViewURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		abortWithError(c, http.StatusBadRequest, "key query parameter is required")
		return
	}

	viewURL, err := h.mediaService.CreateViewURL(c.Request.Context(), objectKey)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create view URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{"view_url": viewURL})
}
