package apperrors

// ErrorCode identifies an error class in API responses.
type ErrorCode string

const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication / authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Users and profiles
	CodeUserNotFound          ErrorCode = "USER_NOT_FOUND"
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeWeakPassword          ErrorCode = "WEAK_PASSWORD"
	CodeDuplicateSkill        ErrorCode = "DUPLICATE_SKILL"

	// Connections
	CodeSelfConnection     ErrorCode = "SELF_CONNECTION"
	CodeAlreadyConnected   ErrorCode = "ALREADY_CONNECTED"
	CodeRequestPending     ErrorCode = "REQUEST_PENDING"
	CodeConnectionNotFound ErrorCode = "CONNECTION_NOT_FOUND"

	// Messaging
	CodeMessageNotFound ErrorCode = "MESSAGE_NOT_FOUND"

	// Referrals
	CodeSelfReferral       ErrorCode = "SELF_REFERRAL"
	CodeOwnRequest         ErrorCode = "OWN_REQUEST"
	CodeNotConnected       ErrorCode = "NOT_CONNECTED"
	CodeReferralsClosed    ErrorCode = "REFERRALS_CLOSED"
	CodeRequestNotFound    ErrorCode = "REQUEST_NOT_FOUND"

	// Files
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
	CodeFileNotFound    ErrorCode = "FILE_NOT_FOUND"
	CodeNoFile          ErrorCode = "NO_FILE"
)
