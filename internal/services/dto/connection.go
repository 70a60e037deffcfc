package dto

import (
	"time"

	"refspot_backend/internal/models"
)

type SendConnectionRequest struct {
	ReceiverID uint   `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"omitempty,max=500"`
}

// ConnectionRequestDTO is one side of a pending request: the other
// party plus the note they attached.
type ConnectionRequestDTO struct {
	ID        uint      `json:"id"`
	User      UserDTO   `json:"user"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ConnectionListResponse struct {
	Connections []UserDTO `json:"connections"`
	Count       int       `json:"count"`
}

type ConnectionRequestsResponse struct {
	Incoming []ConnectionRequestDTO `json:"incoming"`
	Outgoing []ConnectionRequestDTO `json:"outgoing"`
}

// NewIncomingRequestDTO shows the sender to the receiving user.
func NewIncomingRequestDTO(conn *models.Connection) ConnectionRequestDTO {
	d := ConnectionRequestDTO{
		ID:        conn.ID,
		Message:   conn.Message,
		CreatedAt: conn.CreatedAt,
	}
	if conn.Sender != nil {
		d.User = NewUserDTO(conn.Sender)
	}
	return d
}

// NewOutgoingRequestDTO shows the receiver to the sending user.
func NewOutgoingRequestDTO(conn *models.Connection) ConnectionRequestDTO {
	d := ConnectionRequestDTO{
		ID:        conn.ID,
		Message:   conn.Message,
		CreatedAt: conn.CreatedAt,
	}
	if conn.Receiver != nil {
		d.User = NewUserDTO(conn.Receiver)
	}
	return d
}
