package models

import "time"

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusDeclined ConnectionStatus = "declined"
)

// Connection is a mutual-consent relationship between two users.
// Invariant: at most one pending/accepted row per unordered (sender,
// receiver) pair; declined rows stay behind as history and do not block
// a new request.
type Connection struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	SenderID   uint             `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint             `gorm:"not null;index" json:"receiver_id"`
	Status     ConnectionStatus `gorm:"size:20;default:pending" json:"status"`
	Message    string           `gorm:"type:text" json:"message"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// IsParty reports whether userID is either side of the connection.
func (c *Connection) IsParty(userID uint) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}

// PartnerID returns the other side of the connection.
func (c *Connection) PartnerID(userID uint) uint {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}
