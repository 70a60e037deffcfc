package services

import (
	"context"
	"errors"
	"fmt"

	"refspot_backend/internal/auth"
	"refspot_backend/internal/email"
	"refspot_backend/internal/logger"
	"refspot_backend/internal/models"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, mailer email.Provider) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, mailer: mailer}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     hash,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		JobStatus:        models.JobStatusEmployed,
		OpenForReferrals: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(ctx, user)

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	userDTO := dto.NewUserDTO(user)
	return &dto.AuthResponse{Token: token, User: userDTO}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// same error for unknown user and bad password
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User logged in", "user_id", user.ID)

	userDTO := dto.NewUserDTO(user)
	return &dto.AuthResponse{Token: token, User: userDTO}, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(ctx context.Context, user *models.User) {
	err := s.mailer.Send(&email.Email{
		To:      user.Email,
		Subject: "Welcome to RefSpot",
		Body: fmt.Sprintf("Hi %s,\n\nYour account is ready. Complete your profile and start connecting to request and give job referrals.\n\nThe RefSpot Team",
			user.FullName()),
	})
	if err != nil {
		logger.CtxWarn(ctx, "Failed to send welcome email", "user_id", user.ID, "error", err)
	}
}
