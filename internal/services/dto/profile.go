package dto

import (
	"time"

	"refspot_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type UpdateProfileRequest struct {
	FirstName        *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName         *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	Headline         *string `json:"headline,omitempty" validate:"omitempty,max=200"`
	Location         *string `json:"location,omitempty" validate:"omitempty,max=100"`
	About            *string `json:"about,omitempty" validate:"omitempty,max=2000"`
	CurrentCompany   *string `json:"current_company,omitempty" validate:"omitempty,max=100"`
	CurrentPosition  *string `json:"current_position,omitempty" validate:"omitempty,max=100"`
	JobStatus        *string `json:"job_status,omitempty" validate:"omitempty,job_status"`
	OpenForReferrals *bool   `json:"open_for_referrals,omitempty"`
}

type AddSkillRequest struct {
	SkillName   string `json:"skill_name" validate:"required,max=100"`
	Proficiency string `json:"proficiency" validate:"omitempty,proficiency"`
}

type AddExperienceRequest struct {
	Company        string `json:"company" validate:"required,max=100"`
	Position       string `json:"position" validate:"required,max=100"`
	StartDate      string `json:"start_date" validate:"required"`
	EndDate        string `json:"end_date" validate:"omitempty"`
	Current        bool   `json:"current"`
	EmploymentType string `json:"employment_type" validate:"omitempty,employment_type"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	Location       string `json:"location" validate:"omitempty,max=100"`
}

type UpdateExperienceRequest struct {
	Company        *string `json:"company,omitempty" validate:"omitempty,min=1,max=100"`
	Position       *string `json:"position,omitempty" validate:"omitempty,min=1,max=100"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	Current        *bool   `json:"current,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty" validate:"omitempty,employment_type"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location       *string `json:"location,omitempty" validate:"omitempty,max=100"`
}

type AddEducationRequest struct {
	Institution  string `json:"institution" validate:"required,max=150"`
	Degree       string `json:"degree" validate:"omitempty,max=100"`
	FieldOfStudy string `json:"field_of_study" validate:"omitempty,max=100"`
	StartYear    int    `json:"start_year" validate:"required,min=1900,max=2100"`
	EndYear      int    `json:"end_year" validate:"omitempty,min=1900,max=2100"`
	Current      bool   `json:"current"`
}

type UpdateEducationRequest struct {
	Institution  *string `json:"institution,omitempty" validate:"omitempty,min=1,max=150"`
	Degree       *string `json:"degree,omitempty" validate:"omitempty,max=100"`
	FieldOfStudy *string `json:"field_of_study,omitempty" validate:"omitempty,max=100"`
	StartYear    *int    `json:"start_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	EndYear      *int    `json:"end_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Current      *bool   `json:"current,omitempty"`
}

// ==========================
// Responses
// ==========================

type SkillDTO struct {
	ID          uint   `json:"id"`
	SkillName   string `json:"skill_name"`
	Proficiency string `json:"proficiency"`
}

type ExperienceDTO struct {
	ID             uint       `json:"id"`
	Company        string     `json:"company"`
	Position       string     `json:"position"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Current        bool       `json:"current"`
	EmploymentType string     `json:"employment_type,omitempty"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location,omitempty"`
	CompanyLogo    string     `json:"company_logo,omitempty"`
}

type EducationDTO struct {
	ID           uint   `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year,omitempty"`
	Current      bool   `json:"current"`
}

// ProfileResponse bundles a profile page: the user plus the viewer's
// relationship to them, which drives the connect/message buttons.
type ProfileResponse struct {
	User              UserDTO         `json:"user"`
	Skills            []SkillDTO      `json:"skills"`
	Experiences       []ExperienceDTO `json:"experiences"`
	Educations        []EducationDTO  `json:"educations"`
	Referrals         []ReferralDTO   `json:"referrals"`
	IsOwn             bool            `json:"is_own"`
	IsConnected       bool            `json:"is_connected"`
	HasPendingRequest bool            `json:"has_pending_request"`
}

func NewSkillDTO(skill *models.UserSkill) SkillDTO {
	return SkillDTO{
		ID:          skill.ID,
		SkillName:   skill.SkillName,
		Proficiency: string(skill.Proficiency),
	}
}

func NewSkillDTOs(skills []models.UserSkill) []SkillDTO {
	dtos := make([]SkillDTO, 0, len(skills))
	for i := range skills {
		dtos = append(dtos, NewSkillDTO(&skills[i]))
	}
	return dtos
}

func NewExperienceDTO(exp *models.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:             exp.ID,
		Company:        exp.Company,
		Position:       exp.Position,
		StartDate:      exp.StartDate,
		EndDate:        exp.EndDate,
		Current:        exp.Current,
		EmploymentType: string(exp.EmploymentType),
		Description:    exp.Description,
		Location:       exp.Location,
		CompanyLogo:    exp.CompanyLogo,
	}
}

func NewExperienceDTOs(exps []models.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, 0, len(exps))
	for i := range exps {
		dtos = append(dtos, NewExperienceDTO(&exps[i]))
	}
	return dtos
}

func NewEducationDTO(edu *models.Education) EducationDTO {
	return EducationDTO{
		ID:           edu.ID,
		Institution:  edu.Institution,
		Degree:       edu.Degree,
		FieldOfStudy: edu.FieldOfStudy,
		StartYear:    edu.StartYear,
		EndYear:      edu.EndYear,
		Current:      edu.Current,
	}
}

func NewEducationDTOs(edus []models.Education) []EducationDTO {
	dtos := make([]EducationDTO, 0, len(edus))
	for i := range edus {
		dtos = append(dtos, NewEducationDTO(&edus[i]))
	}
	return dtos
}
