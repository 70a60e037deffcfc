package handlers

import (
	"net/http"

	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)
		jobs.POST("", h.Create)
		jobs.DELETE("/:id", h.Deactivate)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	if _, ok := h.CurrentUserID(c); !ok {
		return
	}

	var filter dto.JobFilterQuery
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	resp, err := h.jobService.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	if _, ok := h.CurrentUserID(c); !ok {
		return
	}
	jobID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.jobService.Get(c.Request.Context(), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) Deactivate(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	jobID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.Deactivate(c.Request.Context(), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deactivated"})
}
