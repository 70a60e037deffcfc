package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService       AuthService
	ProfileService    ProfileService
	UploadService     UploadService
	ConnectionService ConnectionService
	MessageService    MessageService
	ReferralService   ReferralService
	JobService        JobService
	SearchService     SearchService
	DashboardService  DashboardService
}
