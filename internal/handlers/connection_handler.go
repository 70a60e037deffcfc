package handlers

import (
	"context"
	"net/http"

	"refspot_backend/internal/middleware"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	*BaseHandler
	connectionService services.ConnectionService
}

func NewConnectionHandler(base *BaseHandler, connectionService services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{BaseHandler: base, connectionService: connectionService}
}

func (h *ConnectionHandler) RegisterRoutes(r *gin.RouterGroup) {
	conns := r.Group("/connections")
	conns.Use(middleware.AuthMiddleware())
	{
		conns.GET("", h.List)
		conns.GET("/requests", h.Requests)
		conns.POST("/requests", h.Send)
		conns.POST("/requests/:id/accept", h.Accept)
		conns.POST("/requests/:id/decline", h.Decline)
		conns.DELETE("/requests/:id", h.Cancel)
		conns.DELETE("/:username", h.Remove)
	}
}

func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.connectionService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConnectionHandler) Requests(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.connectionService.Requests(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConnectionHandler) Send(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SendConnectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.connectionService.Send(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Connection request sent"})
}

func (h *ConnectionHandler) Accept(c *gin.Context) {
	h.respond(c, h.connectionService.Accept, "Connection request accepted")
}

func (h *ConnectionHandler) Decline(c *gin.Context) {
	h.respond(c, h.connectionService.Decline, "Connection request declined")
}

func (h *ConnectionHandler) Cancel(c *gin.Context) {
	h.respond(c, h.connectionService.Cancel, "Connection request cancelled")
}

func (h *ConnectionHandler) respond(c *gin.Context, action func(ctx context.Context, userID, connectionID uint) error, message string) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	connectionID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := action(c.Request.Context(), userID, connectionID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *ConnectionHandler) Remove(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.connectionService.RemoveByUsername(c.Request.Context(), userID, c.Param("username")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connection removed"})
}
