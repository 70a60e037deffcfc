package dto

import "time"

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" validate:"required"`
	Content     string `json:"content" validate:"required,max=2000"`
}

// LegacySendMessageRequest is the pre-v1 payload, which addresses the
// recipient by username.
type LegacySendMessageRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type MessageDTO struct {
	ID        uint      `json:"id"`
	SenderID  uint      `json:"sender_id"`
	Content   string    `json:"content"`
	Time      string    `json:"time"`
	Read      bool      `json:"read"`
	Status    string    `json:"status"`
	IsMine    bool      `json:"is_mine"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessageResponse matches the JSON envelope older clients already
// parse. Time is pre-formatted for display.
type SendMessageResponse struct {
	Success   bool   `json:"success"`
	MessageID uint   `json:"message_id"`
	Content   string `json:"content"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

type ConversationSummaryDTO struct {
	Partner     UserDTO    `json:"partner"`
	LastMessage MessageDTO `json:"last_message"`
	UnreadCount int64      `json:"unread_count"`
}

type ConversationResponse struct {
	Partner  UserDTO      `json:"partner"`
	Messages []MessageDTO `json:"messages"`
}

type MessageRequestDTO struct {
	ID        uint      `json:"id"`
	Sender    UserDTO   `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageCountsResponse struct {
	UnreadCount  int64 `json:"unread_count"`
	PendingCount int64 `json:"pending_count"`
}
