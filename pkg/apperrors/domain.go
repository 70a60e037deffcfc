package apperrors

import "net/http"

// Predeclared domain errors. Services return these (or wrap causes into
// them); handlers pass them to HandleError untouched.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound          = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrUsernameAlreadyExists = New(CodeUsernameAlreadyExists, "Username already exists", http.StatusConflict)
	ErrEmailAlreadyExists    = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrWeakPassword          = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)

	// Profile
	ErrDuplicateSkill     = New(CodeDuplicateSkill, "You already have this skill listed", http.StatusConflict)
	ErrSkillNotFound      = New(CodeNotFound, "Skill not found", http.StatusNotFound)
	ErrExperienceNotFound = New(CodeNotFound, "Experience not found", http.StatusNotFound)
	ErrEducationNotFound  = New(CodeNotFound, "Education not found", http.StatusNotFound)

	// Connections
	ErrSelfConnection        = New(CodeSelfConnection, "You cannot connect to yourself", http.StatusBadRequest)
	ErrAlreadyConnected      = New(CodeAlreadyConnected, "You are already connected to this user", http.StatusConflict)
	ErrRequestAlreadyPending = New(CodeRequestPending, "Connection request already pending", http.StatusConflict)
	ErrConnectionNotFound    = New(CodeConnectionNotFound, "Connection not found", http.StatusNotFound)
	ErrNotPending            = New(CodeInvalidStatus, "Cannot cancel this connection request", http.StatusBadRequest)
	ErrNotAccepted           = New(CodeInvalidStatus, "Connection not found or already removed", http.StatusBadRequest)

	// Messaging
	ErrMessageNotFound = New(CodeMessageNotFound, "Message not found", http.StatusNotFound)

	// Referrals
	ErrSelfReferral           = New(CodeSelfReferral, "You cannot refer yourself", http.StatusBadRequest)
	ErrOwnReferralRequest     = New(CodeOwnRequest, "You cannot respond to your own request", http.StatusBadRequest)
	ErrNotConnected           = New(CodeNotConnected, "You can only request referrals from your connections", http.StatusForbidden)
	ErrReferralsClosed        = New(CodeReferralsClosed, "This user is not currently accepting referral requests", http.StatusForbidden)
	ErrReferralRequestMissing = New(CodeRequestNotFound, "Referral request not found", http.StatusNotFound)

	// Jobs
	ErrJobNotFound = New(CodeNotFound, "Job posting not found", http.StatusNotFound)

	// Files
	ErrNoFile             = New(CodeNoFile, "No file selected", http.StatusBadRequest)
	ErrInvalidImageType   = New(CodeInvalidFileType, "Invalid file type. Please upload PNG, JPG, JPEG, or GIF files only.", http.StatusBadRequest)
	ErrInvalidResumeType  = New(CodeInvalidFileType, "Invalid file type. Please upload PDF files only.", http.StatusBadRequest)
	ErrFileNotFound       = New(CodeFileNotFound, "File not found", http.StatusNotFound)
	ErrNoProfilePhoto     = New(CodeNotFound, "No profile photo to remove", http.StatusNotFound)
	ErrNoResume           = New(CodeNotFound, "No resume to remove", http.StatusNotFound)
)
