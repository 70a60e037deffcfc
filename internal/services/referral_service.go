package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"refspot_backend/internal/cache"
	"refspot_backend/internal/email"
	"refspot_backend/internal/logger"
	"refspot_backend/internal/models"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

// Targeted requests stay open for 30 days.
const referralRequestTTL = 30 * 24 * time.Hour

type ReferralService interface {
	Overview(ctx context.Context, userID uint) (*dto.ReferralOverviewResponse, error)
	CreateRequest(ctx context.Context, userID uint, req *dto.CreateReferralRequestRequest) (*dto.ReferralRequestDTO, error)
	RequestFromUser(ctx context.Context, userID uint, username string, req *dto.RequestFromUserRequest) (*dto.ReferralRequestDTO, error)
	Give(ctx context.Context, referrerID uint, req *dto.GiveReferralRequest) (*dto.ReferralDTO, error)
	RespondToRequest(ctx context.Context, referrerID, requestID uint, req *dto.RespondToRequestRequest) (*dto.ReferralDTO, error)
}

type ReferralServiceImpl struct {
	referralRepo repositories.ReferralRepository
	userRepo     repositories.UserRepository
	connRepo     repositories.ConnectionRepository
	msgRepo      repositories.MessageRepository
	cache        cache.Cache
	mailer       email.Provider
}

func NewReferralService(
	referralRepo repositories.ReferralRepository,
	userRepo repositories.UserRepository,
	connRepo repositories.ConnectionRepository,
	msgRepo repositories.MessageRepository,
	c cache.Cache,
	mailer email.Provider,
) ReferralService {
	return &ReferralServiceImpl{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		connRepo:     connRepo,
		msgRepo:      msgRepo,
		cache:        c,
		mailer:       mailer,
	}
}

func (s *ReferralServiceImpl) Overview(ctx context.Context, userID uint) (*dto.ReferralOverviewResponse, error) {
	open, err := s.referralRepo.OpenRequests(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	mine, err := s.referralRepo.RequestsBySeeker(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	given, err := s.referralRepo.GivenBy(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	received, err := s.referralRepo.ReceivedBy(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ReferralOverviewResponse{
		OpenRequests: dto.NewReferralRequestDTOs(open),
		MyRequests:   dto.NewReferralRequestDTOs(mine),
		Given:        dto.NewReferralDTOs(given),
		Received:     dto.NewReferralDTOs(received),
	}, nil
}

// CreateRequest posts an open broadcast request. Unlike the targeted
// path, it carries no expiry.
func (s *ReferralServiceImpl) CreateRequest(ctx context.Context, userID uint, req *dto.CreateReferralRequestRequest) (*dto.ReferralRequestDTO, error) {
	request := &models.ReferralRequest{
		JobSeekerID:   userID,
		TargetCompany: req.TargetCompany,
		TargetRole:    req.TargetRole,
		Message:       req.Message,
		Status:        models.ReferralRequestOpen,
	}
	if err := s.referralRepo.CreateRequest(request); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Referral request posted",
		"request_id", request.ID, "company", req.TargetCompany)

	requestDTO := dto.NewReferralRequestDTO(request)
	return &requestDTO, nil
}

// RequestFromUser creates a targeted request and notifies the target via
// an auto-approved message. The message and email are best-effort: the
// request stands even when they fail.
func (s *ReferralServiceImpl) RequestFromUser(ctx context.Context, userID uint, username string, req *dto.RequestFromUserRequest) (*dto.ReferralRequestDTO, error) {
	target, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if target.ID == userID {
		return nil, apperrors.NewBadRequestError("You cannot request a referral from yourself")
	}

	if _, err := s.connRepo.FindAcceptedBetween(userID, target.ID); err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrNotConnected
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !target.OpenForReferrals {
		return nil, apperrors.ErrReferralsClosed
	}

	expiresAt := time.Now().UTC().Add(referralRequestTTL)
	request := &models.ReferralRequest{
		JobSeekerID:   userID,
		TargetCompany: req.TargetCompany,
		TargetRole:    req.TargetRole,
		Message:       req.Message,
		Status:        models.ReferralRequestOpen,
		ExpiresAt:     &expiresAt,
	}
	if err := s.referralRepo.CreateRequest(request); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyTarget(ctx, userID, target, req)

	logger.CtxInfo(ctx, "Targeted referral request sent",
		"request_id", request.ID, "target_id", target.ID)

	requestDTO := dto.NewReferralRequestDTO(request)
	return &requestDTO, nil
}

func (s *ReferralServiceImpl) Give(ctx context.Context, referrerID uint, req *dto.GiveReferralRequest) (*dto.ReferralDTO, error) {
	if referrerID == req.CandidateID {
		return nil, apperrors.ErrSelfReferral
	}

	candidate, err := s.userRepo.FindByID(req.CandidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	referral := &models.JobReferral{
		ReferrerID:      referrerID,
		CandidateID:     req.CandidateID,
		Company:         req.Company,
		RoleTitle:       req.RoleTitle,
		RoleDescription: req.RoleDescription,
		Recommendation:  req.Recommendation,
		ReferralType:    models.ReferralTypeDirect,
		HRContact:       req.HRContact,
		ApplicationLink: req.ApplicationLink,
		Status:          models.ReferralStatusActive,
	}
	if err := s.referralRepo.CreateReferral(referral); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyCandidate(ctx, referrerID, candidate, referral)

	logger.CtxInfo(ctx, "Referral given",
		"referral_id", referral.ID, "candidate_id", req.CandidateID)

	referralDTO := dto.NewReferralDTO(referral)
	return &referralDTO, nil
}

// RespondToRequest answers an open marketplace ask. The referral insert
// and the request's fulfilled flag commit together.
func (s *ReferralServiceImpl) RespondToRequest(ctx context.Context, referrerID, requestID uint, req *dto.RespondToRequestRequest) (*dto.ReferralDTO, error) {
	request, err := s.referralRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrReferralRequestNotFound) {
			return nil, apperrors.ErrReferralRequestMissing
		}
		return nil, apperrors.DatabaseError(err)
	}

	if request.JobSeekerID == referrerID {
		return nil, apperrors.ErrOwnReferralRequest
	}
	if request.Status != models.ReferralRequestOpen {
		return nil, apperrors.NewBadRequestError("This request is no longer open")
	}

	recommendation := req.Recommendation
	if recommendation == "" {
		recommendation = fmt.Sprintf("Referral for %s position at %s",
			request.TargetRole, request.TargetCompany)
	}

	reqID := request.ID
	referral := &models.JobReferral{
		ReferrerID:        referrerID,
		CandidateID:       request.JobSeekerID,
		ReferralRequestID: &reqID,
		Company:           request.TargetCompany,
		RoleTitle:         request.TargetRole,
		RoleDescription:   req.RoleDescription,
		Recommendation:    recommendation,
		ReferralType:      models.ReferralTypeResponse,
		HRContact:         req.HRContact,
		ApplicationLink:   req.ApplicationLink,
		Status:            models.ReferralStatusActive,
	}
	if err := s.referralRepo.RespondToRequest(referral, request.ID); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if request.JobSeeker != nil {
		s.notifyCandidate(ctx, referrerID, request.JobSeeker, referral)
	}

	logger.CtxInfo(ctx, "Referral request answered",
		"request_id", request.ID, "referral_id", referral.ID)

	referralDTO := dto.NewReferralDTO(referral)
	return &referralDTO, nil
}

func (s *ReferralServiceImpl) notifyTarget(ctx context.Context, senderID uint, target *models.User, req *dto.RequestFromUserRequest) {
	content := fmt.Sprintf(
		"Hi %s,\n\nI've posted a referral request for %s at %s. If you have any connections there, I'd really appreciate your help!\n\nYou can view the request in the Referrals section.\n\nThanks!",
		target.FullName(), req.TargetRole, req.TargetCompany)

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: target.ID,
		Content:    content,
		// connected users skip the request queue
		RequestStatus: models.MessageRequestApproved,
	}
	if err := s.msgRepo.Create(msg); err != nil {
		logger.CtxWarn(ctx, "Failed to create referral notification message",
			"target_id", target.ID, "error", err)
	} else {
		s.cache.Invalidate(ctx,
			cache.MessageCountsKey(senderID), cache.MessageCountsKey(target.ID))
	}

	err := s.mailer.Send(&email.Email{
		To:      target.Email,
		Subject: "New referral request on RefSpot",
		Body: fmt.Sprintf("Hi %s,\n\nOne of your connections asked you for a referral for the %s role at %s. Sign in to take a look.\n\nThe RefSpot Team",
			target.FullName(), req.TargetRole, req.TargetCompany),
	})
	if err != nil {
		logger.CtxWarn(ctx, "Failed to send referral request email",
			"target_id", target.ID, "error", err)
	}
}

func (s *ReferralServiceImpl) notifyCandidate(ctx context.Context, referrerID uint, candidate *models.User, referral *models.JobReferral) {
	referrer, err := s.userRepo.FindByID(referrerID)
	if err != nil {
		return
	}
	err = s.mailer.Send(&email.Email{
		To:      candidate.Email,
		Subject: fmt.Sprintf("%s referred you for a role at %s", referrer.FullName(), referral.Company),
		Body: fmt.Sprintf("Hi %s,\n\n%s referred you for the %s position at %s. Sign in to see the details.\n\nThe RefSpot Team",
			candidate.FullName(), referrer.FullName(), referral.RoleTitle, referral.Company),
	})
	if err != nil {
		logger.CtxWarn(ctx, "Failed to send referral email",
			"candidate_id", candidate.ID, "error", err)
	}
}
