package models

import "time"

type JobStatus string

const (
	JobStatusEmployed JobStatus = "employed"
	JobStatusSeeking  JobStatus = "seeking"
	JobStatusOpen     JobStatus = "open"
)

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// User is the account plus public profile. Passwords are stored only as
// bcrypt hashes; ProfileImage/ResumeFile hold opaque storage filenames.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`

	FirstName        string    `gorm:"size:50" json:"first_name"`
	LastName         string    `gorm:"size:50" json:"last_name"`
	Headline         string    `gorm:"size:200" json:"headline"`
	Location         string    `gorm:"size:100" json:"location"`
	About            string    `gorm:"type:text" json:"about"`
	CurrentCompany   string    `gorm:"size:100" json:"current_company"`
	CurrentPosition  string    `gorm:"size:100" json:"current_position"`
	JobStatus        JobStatus `gorm:"size:50;default:employed" json:"job_status"`
	OpenForReferrals bool      `gorm:"default:true" json:"open_for_referrals"`
	ProfileImage     string    `gorm:"size:200" json:"profile_image"`
	ResumeFile       string    `gorm:"size:200" json:"resume_file"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName falls back to the username when names are unset.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// UserSkill. One row per (user, skill name) pair, enforced at write time.
type UserSkill struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	SkillName   string      `gorm:"size:100;not null" json:"skill_name"`
	Proficiency Proficiency `gorm:"size:20;default:intermediate" json:"proficiency"`
}

type EmploymentType string

// Experience is a work history entry. EndDate is cleared when Current.
type Experience struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	Company        string         `gorm:"size:100;not null" json:"company"`
	Position       string         `gorm:"size:100;not null" json:"position"`
	StartDate      *time.Time     `json:"start_date"`
	EndDate        *time.Time     `json:"end_date"`
	Current        bool           `gorm:"default:false" json:"current"`
	EmploymentType EmploymentType `gorm:"size:20;default:full-time" json:"employment_type"`
	Description    string         `gorm:"type:text" json:"description"`
	Location       string         `gorm:"size:100" json:"location"`
	CompanyLogo    string         `gorm:"size:200" json:"company_logo"`
}

type Education struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Institution  string `gorm:"size:100;not null" json:"institution"`
	Degree       string `gorm:"size:100" json:"degree"`
	FieldOfStudy string `gorm:"size:100" json:"field_of_study"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year"`
	Current      bool   `gorm:"default:false" json:"current"`
}
