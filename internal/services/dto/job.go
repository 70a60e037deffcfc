package dto

import (
	"time"

	"refspot_backend/internal/models"
)

type CreateJobRequest struct {
	Title          string `json:"title" validate:"required,max=100"`
	Company        string `json:"company" validate:"required,max=100"`
	Location       string `json:"location" validate:"omitempty,max=100"`
	Description    string `json:"description" validate:"required,max=5000"`
	Requirements   string `json:"requirements" validate:"omitempty,max=5000"`
	SalaryRange    string `json:"salary_range" validate:"omitempty,max=100"`
	EmploymentType string `json:"employment_type" validate:"omitempty,employment_type"`
}

type JobFilterQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
}

type JobDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements,omitempty"`
	SalaryRange    string    `json:"salary_range,omitempty"`
	EmploymentType string    `json:"employment_type,omitempty"`
	PostedBy       *UserDTO  `json:"posted_by,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type JobListResponse struct {
	Jobs  []JobDTO `json:"jobs"`
	Count int      `json:"count"`
}

func NewJobDTO(job *models.JobPosting) JobDTO {
	d := JobDTO{
		ID:             job.ID,
		Title:          job.Title,
		Company:        job.Company,
		Location:       job.Location,
		Description:    job.Description,
		Requirements:   job.Requirements,
		SalaryRange:    job.SalaryRange,
		EmploymentType: string(job.EmploymentType),
		IsActive:       job.IsActive,
		CreatedAt:      job.CreatedAt,
	}
	if job.PostedBy != nil {
		postedBy := NewUserDTO(job.PostedBy)
		d.PostedBy = &postedBy
	}
	return d
}

func NewJobDTOs(jobs []models.JobPosting) []JobDTO {
	dtos := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		dtos = append(dtos, NewJobDTO(&jobs[i]))
	}
	return dtos
}
