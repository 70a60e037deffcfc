package dto

import (
	"time"

	"refspot_backend/internal/models"
)

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=80"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// AuthResponse carries the session token; the same token is also set as
// a cookie so browser clients keep working without an Authorization header.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the public view of a user. PasswordHash never leaves the
// model layer.
type UserDTO struct {
	ID               uint      `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Headline         string    `json:"headline,omitempty"`
	Location         string    `json:"location,omitempty"`
	About            string    `json:"about,omitempty"`
	CurrentCompany   string    `json:"current_company,omitempty"`
	CurrentPosition  string    `json:"current_position,omitempty"`
	JobStatus        string    `json:"job_status"`
	OpenForReferrals bool      `json:"open_for_referrals"`
	ProfileImage     string    `json:"profile_image,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		FullName:         user.FullName(),
		Headline:         user.Headline,
		Location:         user.Location,
		About:            user.About,
		CurrentCompany:   user.CurrentCompany,
		CurrentPosition:  user.CurrentPosition,
		JobStatus:        string(user.JobStatus),
		OpenForReferrals: user.OpenForReferrals,
		ProfileImage:     user.ProfileImage,
		CreatedAt:        user.CreatedAt,
	}
}

func NewUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, NewUserDTO(&users[i]))
	}
	return dtos
}
