package handlers

import (
	"io"
	"net/http"

	"refspot_backend/internal/logger"
	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored assets. Photos and logos are public;
// resumes require a session.
type FileHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewFileHandler(base *BaseHandler, uploadService services.UploadService) *FileHandler {
	return &FileHandler{BaseHandler: base, uploadService: uploadService}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	{
		files.GET("/profile_photos/:filename", h.ProfilePhoto)
		files.GET("/company_logos/:filename", h.CompanyLogo)
	}

	gated := r.Group("/files")
	gated.Use(middleware.AuthMiddleware())
	{
		gated.GET("/resumes/:filename", h.Resume)
	}
}

func (h *FileHandler) ProfilePhoto(c *gin.Context) {
	reader, contentType, err := h.uploadService.ProfilePhoto(c.Request.Context(), c.Param("filename"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.stream(c, reader, contentType)
}

func (h *FileHandler) CompanyLogo(c *gin.Context) {
	reader, contentType, err := h.uploadService.CompanyLogo(c.Request.Context(), c.Param("filename"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.stream(c, reader, contentType)
}

func (h *FileHandler) Resume(c *gin.Context) {
	filename := c.Param("filename")
	reader, contentType, err := h.uploadService.Resume(c.Request.Context(), filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	h.stream(c, reader, contentType)
}

func (h *FileHandler) stream(c *gin.Context, reader io.ReadCloser, contentType string) {
	defer reader.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxWarn(c.Request.Context(), "Failed to stream file", "error", err)
	}
}
