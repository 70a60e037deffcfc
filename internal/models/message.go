package models

import "time"

type MessageRequestStatus string

const (
	MessageRequestPending  MessageRequestStatus = "pending"
	MessageRequestApproved MessageRequestStatus = "approved"
	MessageRequestDeclined MessageRequestStatus = "declined"
)

// Message is a direct message. RequestStatus is computed at send time:
// approved when the parties are connected or an approved message already
// exists between them, pending otherwise. Pending messages are visible
// only in the receiver's request queue until approved.
type Message struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	SenderID      uint                 `gorm:"not null;index" json:"sender_id"`
	ReceiverID    uint                 `gorm:"not null;index" json:"receiver_id"`
	Content       string               `gorm:"type:text;not null" json:"content"`
	Read          bool                 `gorm:"default:false" json:"read"`
	RequestStatus MessageRequestStatus `gorm:"column:message_request_status;size:20" json:"message_request_status"`
	CreatedAt     time.Time            `json:"created_at"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
