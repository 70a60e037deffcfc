package dto

import (
	"time"

	"refspot_backend/internal/models"
)

// ==========================
// Requests
// ==========================

// CreateReferralRequestRequest posts an open ask to the marketplace.
type CreateReferralRequestRequest struct {
	TargetCompany string `json:"target_company" validate:"required,max=100"`
	TargetRole    string `json:"target_role" validate:"required,max=100"`
	Message       string `json:"message" validate:"omitempty,max=1000"`
}

// RequestFromUserRequest asks a specific connection for a referral.
type RequestFromUserRequest struct {
	TargetCompany string `json:"target_company" validate:"required,max=100"`
	TargetRole    string `json:"target_role" validate:"required,max=100"`
	Message       string `json:"message" validate:"omitempty,max=1000"`
}

// GiveReferralRequest refers a candidate directly, unprompted.
type GiveReferralRequest struct {
	CandidateID     uint   `json:"candidate_id" validate:"required"`
	Company         string `json:"company" validate:"required,max=100"`
	RoleTitle       string `json:"role_title" validate:"required,max=100"`
	RoleDescription string `json:"role_description" validate:"omitempty,max=2000"`
	Recommendation  string `json:"recommendation" validate:"omitempty,max=2000"`
	HRContact       string `json:"hr_contact" validate:"omitempty,max=200"`
	ApplicationLink string `json:"application_link" validate:"omitempty,max=500"`
}

// RespondToRequestRequest answers an open marketplace ask. Company and
// role come from the request being answered.
type RespondToRequestRequest struct {
	RoleDescription string `json:"role_description" validate:"omitempty,max=2000"`
	Recommendation  string `json:"recommendation" validate:"omitempty,max=2000"`
	HRContact       string `json:"hr_contact" validate:"omitempty,max=200"`
	ApplicationLink string `json:"application_link" validate:"omitempty,max=500"`
}

// ==========================
// Responses
// ==========================

type ReferralRequestDTO struct {
	ID            uint       `json:"id"`
	JobSeeker     *UserDTO   `json:"job_seeker,omitempty"`
	TargetCompany string     `json:"target_company"`
	TargetRole    string     `json:"target_role"`
	Message       string     `json:"message,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type ReferralDTO struct {
	ID              uint      `json:"id"`
	Referrer        *UserDTO  `json:"referrer,omitempty"`
	Candidate       *UserDTO  `json:"candidate,omitempty"`
	Company         string    `json:"company"`
	RoleTitle       string    `json:"role_title"`
	RoleDescription string    `json:"role_description,omitempty"`
	Recommendation  string    `json:"recommendation,omitempty"`
	ReferralType    string    `json:"referral_type"`
	HRContact       string    `json:"hr_contact,omitempty"`
	ApplicationLink string    `json:"application_link,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReferralOverviewResponse is the referrals landing page: the open
// marketplace plus everything involving the viewer.
type ReferralOverviewResponse struct {
	OpenRequests []ReferralRequestDTO `json:"open_requests"`
	MyRequests   []ReferralRequestDTO `json:"my_requests"`
	Given        []ReferralDTO        `json:"given"`
	Received     []ReferralDTO        `json:"received"`
}

func NewReferralRequestDTO(req *models.ReferralRequest) ReferralRequestDTO {
	d := ReferralRequestDTO{
		ID:            req.ID,
		TargetCompany: req.TargetCompany,
		TargetRole:    req.TargetRole,
		Message:       req.Message,
		Status:        string(req.Status),
		CreatedAt:     req.CreatedAt,
		ExpiresAt:     req.ExpiresAt,
	}
	if req.JobSeeker != nil {
		seeker := NewUserDTO(req.JobSeeker)
		d.JobSeeker = &seeker
	}
	return d
}

func NewReferralRequestDTOs(reqs []models.ReferralRequest) []ReferralRequestDTO {
	dtos := make([]ReferralRequestDTO, 0, len(reqs))
	for i := range reqs {
		dtos = append(dtos, NewReferralRequestDTO(&reqs[i]))
	}
	return dtos
}

func NewReferralDTO(ref *models.JobReferral) ReferralDTO {
	d := ReferralDTO{
		ID:              ref.ID,
		Company:         ref.Company,
		RoleTitle:       ref.RoleTitle,
		RoleDescription: ref.RoleDescription,
		Recommendation:  ref.Recommendation,
		ReferralType:    string(ref.ReferralType),
		HRContact:       ref.HRContact,
		ApplicationLink: ref.ApplicationLink,
		Status:          string(ref.Status),
		CreatedAt:       ref.CreatedAt,
	}
	if ref.Referrer != nil {
		referrer := NewUserDTO(ref.Referrer)
		d.Referrer = &referrer
	}
	if ref.Candidate != nil {
		candidate := NewUserDTO(ref.Candidate)
		d.Candidate = &candidate
	}
	return d
}

func NewReferralDTOs(refs []models.JobReferral) []ReferralDTO {
	dtos := make([]ReferralDTO, 0, len(refs))
	for i := range refs {
		dtos = append(dtos, NewReferralDTO(&refs[i]))
	}
	return dtos
}
