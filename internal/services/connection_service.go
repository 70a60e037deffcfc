package services

import (
	"context"
	"encoding/json"
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

const connectionsCacheTTL = 5 * time.Minute

type ConnectionService interface {
	List(ctx context.Context, userID uint) (*dto.ConnectionListResponse, error)
	Requests(ctx context.Context, userID uint) (*dto.ConnectionRequestsResponse, error)
	Send(ctx context.Context, senderID uint, req *dto.SendConnectionRequest) error
	Accept(ctx context.Context, userID, connectionID uint) error
	Decline(ctx context.Context, userID, connectionID uint) error
	Cancel(ctx context.Context, userID, connectionID uint) error
	Remove(ctx context.Context, userID, partnerID uint) error
	RemoveByUsername(ctx context.Context, userID uint, username string) error
}

type ConnectionServiceImpl struct {
	connRepo repositories.ConnectionRepository
	userRepo repositories.UserRepository
	cache    cache.Cache
	mailer   email.Provider
}

func NewConnectionService(
	connRepo repositories.ConnectionRepository,
	userRepo repositories.UserRepository,
	c cache.Cache,
	mailer email.Provider,
) ConnectionService {
	return &ConnectionServiceImpl{
		connRepo: connRepo,
		userRepo: userRepo,
		cache:    c,
		mailer:   mailer,
	}
}

func (s *ConnectionServiceImpl) List(ctx context.Context, userID uint) (*dto.ConnectionListResponse, error) {
	key := cache.ConnectionsKey(userID)
	if data, ok := s.cache.Get(ctx, key); ok {
		var resp dto.ConnectionListResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		s.cache.Invalidate(ctx, key)
	}

	partners, err := s.connRepo.AcceptedPartners(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.ConnectionListResponse{
		Connections: dto.NewUserDTOs(partners),
		Count:       len(partners),
	}

	if data, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, key, data, connectionsCacheTTL)
	}
	return resp, nil
}

func (s *ConnectionServiceImpl) Requests(ctx context.Context, userID uint) (*dto.ConnectionRequestsResponse, error) {
	incoming, err := s.connRepo.IncomingPending(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	outgoing, err := s.connRepo.OutgoingPending(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.ConnectionRequestsResponse{
		Incoming: make([]dto.ConnectionRequestDTO, 0, len(incoming)),
		Outgoing: make([]dto.ConnectionRequestDTO, 0, len(outgoing)),
	}
	for i := range incoming {
		resp.Incoming = append(resp.Incoming, dto.NewIncomingRequestDTO(&incoming[i]))
	}
	for i := range outgoing {
		resp.Outgoing = append(resp.Outgoing, dto.NewOutgoingRequestDTO(&outgoing[i]))
	}
	return resp, nil
}

func (s *ConnectionServiceImpl) Send(ctx context.Context, senderID uint, req *dto.SendConnectionRequest) error {
	if senderID == req.ReceiverID {
		return apperrors.ErrSelfConnection
	}

	receiver, err := s.userRepo.FindByID(req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}

	// declined history does not block a new request
	existing, err := s.connRepo.FindActiveBetween(senderID, req.ReceiverID)
	if err == nil {
		if existing.Status == models.ConnectionStatusAccepted {
			return apperrors.ErrAlreadyConnected
		}
		return apperrors.ErrRequestAlreadyPending
	}
	if !errors.Is(err, repositories.ErrConnectionNotFound) {
		return apperrors.DatabaseError(err)
	}

	conn := &models.Connection{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Status:     models.ConnectionStatusPending,
		Message:    req.Message,
	}
	if err := s.connRepo.Create(conn); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.invalidate(ctx, senderID, req.ReceiverID)
	s.notifyRequest(ctx, senderID, receiver)

	logger.CtxInfo(ctx, "Connection request sent", "sender_id", senderID, "receiver_id", req.ReceiverID)
	return nil
}

func (s *ConnectionServiceImpl) Accept(ctx context.Context, userID, connectionID uint) error {
	return s.respond(ctx, userID, connectionID, models.ConnectionStatusAccepted)
}

func (s *ConnectionServiceImpl) Decline(ctx context.Context, userID, connectionID uint) error {
	return s.respond(ctx, userID, connectionID, models.ConnectionStatusDeclined)
}

// respond handles accept and decline: receiver-only, pending rows only.
func (s *ConnectionServiceImpl) respond(ctx context.Context, userID, connectionID uint, status models.ConnectionStatus) error {
	conn, err := s.connRepo.FindByID(connectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return apperrors.ErrConnectionNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if conn.ReceiverID != userID {
		return apperrors.ErrForbidden
	}
	if conn.Status != models.ConnectionStatusPending {
		return apperrors.ErrConnectionNotFound
	}

	if err := s.connRepo.UpdateStatus(connectionID, status); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.invalidate(ctx, conn.SenderID, conn.ReceiverID)
	logger.CtxInfo(ctx, "Connection request handled",
		"connection_id", connectionID, "status", string(status))
	return nil
}

func (s *ConnectionServiceImpl) Cancel(ctx context.Context, userID, connectionID uint) error {
	conn, err := s.connRepo.FindByID(connectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return apperrors.ErrConnectionNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if conn.SenderID != userID {
		return apperrors.ErrForbidden
	}
	if conn.Status != models.ConnectionStatusPending {
		return apperrors.ErrNotPending
	}

	if err := s.connRepo.Delete(connectionID); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.invalidate(ctx, conn.SenderID, conn.ReceiverID)
	return nil
}

func (s *ConnectionServiceImpl) Remove(ctx context.Context, userID, partnerID uint) error {
	conn, err := s.connRepo.FindAcceptedBetween(userID, partnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return apperrors.ErrNotAccepted
		}
		return apperrors.DatabaseError(err)
	}

	if err := s.connRepo.Delete(conn.ID); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.invalidate(ctx, conn.SenderID, conn.ReceiverID)
	logger.CtxInfo(ctx, "Connection removed", "user_id", userID, "partner_id", partnerID)
	return nil
}

func (s *ConnectionServiceImpl) RemoveByUsername(ctx context.Context, userID uint, username string) error {
	partner, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return s.Remove(ctx, userID, partner.ID)
}

func (s *ConnectionServiceImpl) invalidate(ctx context.Context, userA, userB uint) {
	s.cache.Invalidate(ctx, cache.ConnectionsKey(userA), cache.ConnectionsKey(userB))
}

func (s *ConnectionServiceImpl) notifyRequest(ctx context.Context, senderID uint, receiver *models.User) {
	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		return
	}
	err = s.mailer.Send(&email.Email{
		To:      receiver.Email,
		Subject: fmt.Sprintf("%s wants to connect on RefSpot", sender.FullName()),
		Body: fmt.Sprintf("Hi %s,\n\n%s sent you a connection request. Sign in to accept or decline it.\n\nThe RefSpot Team",
			receiver.FullName(), sender.FullName()),
	})
	if err != nil {
		logger.CtxWarn(ctx, "Failed to send connection request email",
			"receiver_id", receiver.ID, "error", err)
	}
}
