package handlers

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	ProfileHandler    *ProfileHandler
	UploadHandler     *UploadHandler
	FileHandler       *FileHandler
	ConnectionHandler *ConnectionHandler
	MessageHandler    *MessageHandler
	ReferralHandler   *ReferralHandler
	JobHandler        *JobHandler
	SearchHandler     *SearchHandler
	DashboardHandler  *DashboardHandler
}
