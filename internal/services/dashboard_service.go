package services

import (
	"context"
	"errors"

	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

const (
	dashboardConnectionLimit = 5
	dashboardReferralLimit   = 3
)

type DashboardService interface {
	Dashboard(ctx context.Context, userID uint) (*dto.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	userRepo     repositories.UserRepository
	connRepo     repositories.ConnectionRepository
	msgRepo      repositories.MessageRepository
	referralRepo repositories.ReferralRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	connRepo repositories.ConnectionRepository,
	msgRepo repositories.MessageRepository,
	referralRepo repositories.ReferralRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:     userRepo,
		connRepo:     connRepo,
		msgRepo:      msgRepo,
		referralRepo: referralRepo,
	}
}

func (s *DashboardServiceImpl) Dashboard(ctx context.Context, userID uint) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	recent, err := s.connRepo.RecentAcceptedPartners(userID, dashboardConnectionLimit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	unread, err := s.msgRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	pending, err := s.connRepo.CountPendingIncoming(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	referrals, err := s.referralRepo.RecentReceivedBy(userID, dashboardReferralLimit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.DashboardResponse{
		User:               dto.NewUserDTO(user),
		RecentConnections:  dto.NewUserDTOs(recent),
		UnreadMessages:     unread,
		PendingConnections: pending,
		RecentReferrals:    dto.NewReferralDTOs(referrals),
	}, nil
}
