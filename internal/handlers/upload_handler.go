package handlers

import (
	"io"
	"net/http"

	"petwork_backend/internal/services"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	BaseHandler
	uploads *services.UploadService
}

func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler: NewBaseHandler(),
		uploads:     uploads,
	}
}

// UploadProfilePicture handles PUT /api/user/profile-picture
// (multipart field "file").
func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A file is required"))
		return
	}

	key, err := h.uploads.UploadProfilePicture(
		c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), header)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"key": key})
}

// GetProfilePicture handles GET /api/user/profile-picture and streams
// the image.
func (h *UploadHandler) GetProfilePicture(c *gin.Context) {
	reader, contentType, err := h.uploads.GetProfilePicture(
		c.Request.Context(), h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

// DeleteProfilePicture handles DELETE /api/user/profile-picture.
func (h *UploadHandler) DeleteProfilePicture(c *gin.Context) {
	if err := h.uploads.DeleteProfilePicture(
		c.Request.Context(), h.GetDB(c), h.CurrentUserID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Profile picture deleted"})
}

// GetFile handles GET /api/files/*key for pet pictures and other
// stored media.
func (h *UploadHandler) GetFile(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	reader, contentType, err := h.uploads.GetFile(c.Request.Context(), key)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
