package handlers

import (
	"context"
	"net/http"

	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	msgs := r.Group("/messages")
	msgs.Use(middleware.AuthMiddleware())
	{
		msgs.GET("", h.Conversations)
		msgs.POST("", h.Send)
		msgs.GET("/requests", h.Requests)
		msgs.POST("/requests/:id/approve", h.Approve)
		msgs.POST("/requests/:id/decline", h.Decline)
		msgs.GET("/counts", h.Counts)
		msgs.GET("/:username", h.Conversation)
		msgs.DELETE("/:username", h.DeleteConversation)
	}
}

// RegisterLegacyRoutes mounts the pre-v1 send endpoint, which older
// clients still call and which keeps its original response envelope.
func (h *MessageHandler) RegisterLegacyRoutes(r *gin.RouterGroup) {
	legacy := r.Group("/messages")
	legacy.Use(middleware.AuthMiddleware())
	{
		legacy.POST("/send", h.SendLegacy)
	}
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Conversations(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": resp})
}

func (h *MessageHandler) Requests(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Requests(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resp})
}

func (h *MessageHandler) Approve(c *gin.Context) {
	h.handleRequest(c, h.messageService.Approve, "Message request approved")
}

func (h *MessageHandler) Decline(c *gin.Context) {
	h.handleRequest(c, h.messageService.Decline, "Message request declined")
}

func (h *MessageHandler) handleRequest(c *gin.Context, action func(ctx context.Context, userID, messageID uint) error, message string) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	messageID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := action(c.Request.Context(), userID, messageID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *MessageHandler) Counts(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Counts(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Conversation(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.messageService.Send(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SendLegacy keeps the historical contract: the recipient comes as a
// username and failures are {"success": false, "error": ...} instead of
// the usual error envelope.
func (h *MessageHandler) SendLegacy(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.LegacySendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	if req.Username == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing username or content"})
		return
	}

	resp, err := h.messageService.SendToUsername(c.Request.Context(), userID, req.Username, req.Content)
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			c.JSON(appErr.HTTPCode, gin.H{"success": false, "error": appErr.Message})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send message"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) DeleteConversation(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.messageService.DeleteConversation(c.Request.Context(), userID, c.Param("username")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted"})
}
