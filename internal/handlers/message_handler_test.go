package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"refspot_backend/internal/handlers"
	"refspot_backend/internal/services/dto"
	"refspot_backend/internal/validator"
	"refspot_backend/pkg/apperrors"
	"refspot_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMessageService covers just what the legacy endpoint exercises.
type stubMessageService struct {
	sendResp     *dto.SendMessageResponse
	sendErr      error
	lastUsername string
	lastContent  string
}

func (s *stubMessageService) Send(ctx context.Context, senderID uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return s.sendResp, nil
}

func (s *stubMessageService) SendToUsername(ctx context.Context, senderID uint, username, content string) (*dto.SendMessageResponse, error) {
	s.lastUsername = username
	s.lastContent = content
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return s.sendResp, nil
}

func (s *stubMessageService) Conversations(ctx context.Context, userID uint) ([]dto.ConversationSummaryDTO, error) {
	return nil, nil
}
func (s *stubMessageService) Requests(ctx context.Context, userID uint) ([]dto.MessageRequestDTO, error) {
	return nil, nil
}
func (s *stubMessageService) Approve(ctx context.Context, userID, messageID uint) error { return nil }
func (s *stubMessageService) Decline(ctx context.Context, userID, messageID uint) error { return nil }
func (s *stubMessageService) Conversation(ctx context.Context, userID uint, username string) (*dto.ConversationResponse, error) {
	return nil, nil
}
func (s *stubMessageService) DeleteConversation(ctx context.Context, userID uint, username string) error {
	return nil
}
func (s *stubMessageService) Counts(ctx context.Context, userID uint) (*dto.MessageCountsResponse, error) {
	return nil, nil
}

func legacyRouter(svc *stubMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := handlers.NewMessageHandler(handlers.NewBaseHandler(validator.New()), svc)
	legacy := router.Group("/api")
	// stand-in for the auth middleware
	legacy.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.UserIDContextKey), uint(1))
		c.Next()
	})
	legacy.POST("/messages/send", handler.SendLegacy)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendLegacySuccess(t *testing.T) {
	svc := &stubMessageService{sendResp: &dto.SendMessageResponse{
		Success:   true,
		MessageID: 7,
		Content:   "hello",
		Time:      "June 01, 2025 at 12:01 PM",
		Status:    "approved",
	}}
	router := legacyRouter(svc)

	w := postJSON(router, "/api/messages/send", `{"username": "bob", "content": "hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(7), body["message_id"])
	assert.Equal(t, "June 01, 2025 at 12:01 PM", body["time"])
	assert.Equal(t, "approved", body["status"])

	assert.Equal(t, "bob", svc.lastUsername)
	assert.Equal(t, "hello", svc.lastContent)
}

func TestSendLegacyMissingFields(t *testing.T) {
	router := legacyRouter(&stubMessageService{})

	w := postJSON(router, "/api/messages/send", `{"username": "bob"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing username or content", body["error"])
}

func TestSendLegacyServiceError(t *testing.T) {
	router := legacyRouter(&stubMessageService{sendErr: apperrors.ErrUserNotFound})

	w := postJSON(router, "/api/messages/send", `{"username": "ghost", "content": "hi"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, apperrors.ErrUserNotFound.Message, body["error"])
}

func TestSendLegacyBadJSON(t *testing.T) {
	router := legacyRouter(&stubMessageService{})

	w := postJSON(router, "/api/messages/send", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid request", body["error"])
}
