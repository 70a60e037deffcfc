package handlers

import (
	"net/http"

	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/:username", h.ViewProfile)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.PUT("", h.UpdateProfile)

		profile.POST("/skills", h.AddSkill)
		profile.DELETE("/skills/:id", h.DeleteSkill)

		profile.POST("/experiences", h.AddExperience)
		profile.PUT("/experiences/:id", h.UpdateExperience)
		profile.DELETE("/experiences/:id", h.DeleteExperience)

		profile.POST("/educations", h.AddEducation)
		profile.PUT("/educations/:id", h.UpdateEducation)
		profile.DELETE("/educations/:id", h.DeleteEducation)
	}
}

func (h *ProfileHandler) ViewProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.ViewProfile(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Skills

func (h *ProfileHandler) AddSkill(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	skill, err := h.profileService.AddSkill(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	skillID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.profileService.DeleteSkill(c.Request.Context(), userID, skillID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}

// Experiences

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	exp, err := h.profileService.AddExperience(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	expID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	exp, err := h.profileService.UpdateExperience(c.Request.Context(), userID, expID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	expID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.profileService.DeleteExperience(c.Request.Context(), userID, expID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience removed"})
}

// Education

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.AddEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	edu, err := h.profileService.AddEducation(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, edu)
}

func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	eduID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	edu, err := h.profileService.UpdateEducation(c.Request.Context(), userID, eduID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, edu)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	eduID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.profileService.DeleteEducation(c.Request.Context(), userID, eduID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education removed"})
}
