package contextkeys

// Custom key type to avoid collisions with other context users.
type ContextKey string

const (
	// UserIDContextKey is the gin context key holding the authenticated user's id.
	UserIDContextKey = ContextKey("userID")

	// UsernameContextKey is the gin context key holding the authenticated user's username.
	UsernameContextKey = ContextKey("username")
)
