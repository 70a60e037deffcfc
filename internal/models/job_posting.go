package models

import "time"

// JobPosting is a simple job listing. Removal is logical (IsActive=false),
// never physical.
type JobPosting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Company        string    `gorm:"size:100;not null" json:"company"`
	Location       string    `gorm:"size:100" json:"location"`
	Description    string    `gorm:"type:text" json:"description"`
	Requirements   string    `gorm:"type:text" json:"requirements"`
	SalaryRange    string    `gorm:"size:100" json:"salary_range"`
	EmploymentType string    `gorm:"size:50" json:"employment_type"`
	PostedByID     uint      `gorm:"index" json:"posted_by_id"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`

	PostedBy *User `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`
}
