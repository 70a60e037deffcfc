package handlers

import (
	"net/http"

	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	*BaseHandler
	referralService services.ReferralService
}

func NewReferralHandler(base *BaseHandler, referralService services.ReferralService) *ReferralHandler {
	return &ReferralHandler{BaseHandler: base, referralService: referralService}
}

func (h *ReferralHandler) RegisterRoutes(r *gin.RouterGroup) {
	refs := r.Group("/referrals")
	refs.Use(middleware.AuthMiddleware())
	{
		refs.GET("", h.Overview)
		refs.POST("/requests", h.CreateRequest)
		refs.POST("/requests/:id/respond", h.RespondToRequest)
		refs.POST("/request-from/:username", h.RequestFromUser)
		refs.POST("/give", h.Give)
	}
}

func (h *ReferralHandler) Overview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.referralService.Overview(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferralHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReferralRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.referralService.CreateRequest(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReferralHandler) RequestFromUser(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.RequestFromUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.referralService.RequestFromUser(c.Request.Context(), userID, c.Param("username"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReferralHandler) Give(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.GiveReferralRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.referralService.Give(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReferralHandler) RespondToRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	requestID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RespondToRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.referralService.RespondToRequest(c.Request.Context(), userID, requestID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
