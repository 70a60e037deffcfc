package handlers

import (
	"net/http"

	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"
	"refspot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.POST("/photo", h.UploadPhoto)
		profile.DELETE("/photo", h.RemovePhoto)
		profile.POST("/resume", h.UploadResume)
		profile.DELETE("/resume", h.RemoveResume)
	}
}

func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFile)
		return
	}

	filename, err := h.uploadService.UploadProfilePhoto(c.Request.Context(), userID, fh)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

func (h *UploadHandler) RemovePhoto(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.uploadService.RemoveProfilePhoto(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile photo removed"})
}

func (h *UploadHandler) UploadResume(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFile)
		return
	}

	filename, err := h.uploadService.UploadResume(c.Request.Context(), userID, fh)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

func (h *UploadHandler) RemoveResume(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.uploadService.RemoveResume(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume removed"})
}
