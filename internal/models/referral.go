package models

import "time"

type ReferralRequestStatus string

const (
	ReferralRequestOpen      ReferralRequestStatus = "open"
	ReferralRequestFulfilled ReferralRequestStatus = "fulfilled"
	ReferralRequestExpired   ReferralRequestStatus = "expired"
)

// ReferralRequest is a job seeker's broadcast ask for a referral into a
// specific company/role. Never deleted physically; closed by status.
type ReferralRequest struct {
	ID            uint                  `gorm:"primaryKey" json:"id"`
	JobSeekerID   uint                  `gorm:"not null;index" json:"job_seeker_id"`
	TargetCompany string                `gorm:"size:100;not null" json:"target_company"`
	TargetRole    string                `gorm:"size:200;not null" json:"target_role"`
	Message       string                `gorm:"type:text" json:"message"`
	Status        ReferralRequestStatus `gorm:"size:20;default:open" json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	ExpiresAt     *time.Time            `json:"expires_at"`

	JobSeeker *User `gorm:"foreignKey:JobSeekerID" json:"job_seeker,omitempty"`
}

type ReferralType string

const (
	ReferralTypeDirect   ReferralType = "direct"
	ReferralTypeResponse ReferralType = "response"
)

type ReferralStatus string

const (
	ReferralStatusActive   ReferralStatus = "active"
	ReferralStatusApplied  ReferralStatus = "applied"
	ReferralStatusHired    ReferralStatus = "hired"
	ReferralStatusRejected ReferralStatus = "rejected"
)

// JobReferral is a recommendation made by referrer on behalf of candidate.
// Type response implies ReferralRequestID is set and the source request
// was marked fulfilled in the same transaction.
type JobReferral struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	ReferrerID        uint         `gorm:"not null;index" json:"referrer_id"`
	CandidateID       uint         `gorm:"not null;index" json:"candidate_id"`
	ReferralRequestID *uint        `json:"referral_request_id"`
	Company           string       `gorm:"size:100;not null" json:"company"`
	RoleTitle         string       `gorm:"size:200;not null" json:"role_title"`
	RoleDescription   string       `gorm:"type:text" json:"role_description"`
	Recommendation    string       `gorm:"column:recommendation_text;type:text;not null" json:"recommendation_text"`
	ReferralType      ReferralType `gorm:"size:20;default:direct" json:"referral_type"`

	HRContact       string `gorm:"column:hr_contact;size:200" json:"hr_contact"`
	ApplicationLink string `gorm:"size:500" json:"application_link"`

	Status    ReferralStatus `gorm:"size:20;default:active" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Referrer        *User            `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty"`
	Candidate       *User            `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	ReferralRequest *ReferralRequest `gorm:"foreignKey:ReferralRequestID" json:"referral_request,omitempty"`
}
