package dto

// DashboardResponse is the signed-in landing page summary.
type DashboardResponse struct {
	User               UserDTO       `json:"user"`
	RecentConnections  []UserDTO     `json:"recent_connections"`
	UnreadMessages     int64         `json:"unread_messages"`
	PendingConnections int64         `json:"pending_connections"`
	RecentReferrals    []ReferralDTO `json:"recent_referrals"`
}
