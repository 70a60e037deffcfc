package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"refspot_backend/internal/cache"
	"refspot_backend/internal/logger"
	"refspot_backend/internal/models"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

const (
	messageCountsCacheTTL = 60 * time.Second

	// display formats expected by existing clients
	sendTimeFormat         = "January 02, 2006 at 3:04 PM"
	conversationTimeFormat = "3:04 PM"
)

type MessageService interface {
	Conversations(ctx context.Context, userID uint) ([]dto.ConversationSummaryDTO, error)
	Requests(ctx context.Context, userID uint) ([]dto.MessageRequestDTO, error)
	Approve(ctx context.Context, userID, messageID uint) error
	Decline(ctx context.Context, userID, messageID uint) error
	Conversation(ctx context.Context, userID uint, username string) (*dto.ConversationResponse, error)
	Send(ctx context.Context, senderID uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	SendToUsername(ctx context.Context, senderID uint, username, content string) (*dto.SendMessageResponse, error)
	DeleteConversation(ctx context.Context, userID uint, username string) error
	Counts(ctx context.Context, userID uint) (*dto.MessageCountsResponse, error)
}

type MessageServiceImpl struct {
	msgRepo  repositories.MessageRepository
	userRepo repositories.UserRepository
	connRepo repositories.ConnectionRepository
	cache    cache.Cache
}

func NewMessageService(
	msgRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	connRepo repositories.ConnectionRepository,
	c cache.Cache,
) MessageService {
	return &MessageServiceImpl{
		msgRepo:  msgRepo,
		userRepo: userRepo,
		connRepo: connRepo,
		cache:    c,
	}
}

// Conversations groups the user's approved messages by partner, newest
// conversation first, with per-partner unread counts.
func (s *MessageServiceImpl) Conversations(ctx context.Context, userID uint) ([]dto.ConversationSummaryDTO, error) {
	msgs, err := s.msgRepo.ApprovedForUser(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	summaries := make([]dto.ConversationSummaryDTO, 0)
	index := make(map[uint]int)

	for i := range msgs {
		msg := &msgs[i]

		var partner *models.User
		if msg.SenderID == userID {
			partner = msg.Receiver
		} else {
			partner = msg.Sender
		}
		if partner == nil {
			continue
		}

		pos, seen := index[partner.ID]
		if !seen {
			// messages are newest-first, so the first one per partner
			// is the conversation's latest
			summaries = append(summaries, dto.ConversationSummaryDTO{
				Partner:     dto.NewUserDTO(partner),
				LastMessage: s.toMessageDTO(msg, userID, conversationTimeFormat),
			})
			pos = len(summaries) - 1
			index[partner.ID] = pos
		}
		if msg.SenderID == partner.ID && !msg.Read {
			summaries[pos].UnreadCount++
		}
	}
	return summaries, nil
}

func (s *MessageServiceImpl) Requests(ctx context.Context, userID uint) ([]dto.MessageRequestDTO, error) {
	msgs, err := s.msgRepo.PendingForReceiver(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	requests := make([]dto.MessageRequestDTO, 0, len(msgs))
	for i := range msgs {
		msg := &msgs[i]
		if msg.Sender == nil {
			continue
		}
		requests = append(requests, dto.MessageRequestDTO{
			ID:        msg.ID,
			Sender:    dto.NewUserDTO(msg.Sender),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return requests, nil
}

func (s *MessageServiceImpl) Approve(ctx context.Context, userID, messageID uint) error {
	return s.handleRequest(ctx, userID, messageID, models.MessageRequestApproved)
}

func (s *MessageServiceImpl) Decline(ctx context.Context, userID, messageID uint) error {
	return s.handleRequest(ctx, userID, messageID, models.MessageRequestDeclined)
}

// handleRequest approves or declines one pending message. Only that
// message flips; later sends re-evaluate the gate on their own.
func (s *MessageServiceImpl) handleRequest(ctx context.Context, userID, messageID uint, status models.MessageRequestStatus) error {
	msg, err := s.msgRepo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if msg.ReceiverID != userID {
		return apperrors.ErrForbidden
	}
	if msg.RequestStatus != models.MessageRequestPending {
		return apperrors.ErrMessageNotFound
	}

	if err := s.msgRepo.UpdateRequestStatus(messageID, status); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.cache.Invalidate(ctx,
		cache.MessageCountsKey(msg.SenderID), cache.MessageCountsKey(msg.ReceiverID))
	logger.CtxInfo(ctx, "Message request handled",
		"message_id", messageID, "status", string(status))
	return nil
}

func (s *MessageServiceImpl) Conversation(ctx context.Context, userID uint, username string) (*dto.ConversationResponse, error) {
	partner, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	msgs, err := s.msgRepo.ApprovedBetween(userID, partner.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// opening the conversation reads the partner's messages
	if err := s.msgRepo.MarkReadFromPartner(userID, partner.ID); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.cache.Invalidate(ctx, cache.MessageCountsKey(userID))

	resp := &dto.ConversationResponse{
		Partner:  dto.NewUserDTO(partner),
		Messages: make([]dto.MessageDTO, 0, len(msgs)),
	}
	for i := range msgs {
		resp.Messages = append(resp.Messages, s.toMessageDTO(&msgs[i], userID, conversationTimeFormat))
	}
	return resp, nil
}

func (s *MessageServiceImpl) Send(ctx context.Context, senderID uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if _, err := s.userRepo.FindByID(req.RecipientID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	status, err := s.requestStatusFor(senderID, req.RecipientID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		SenderID:      senderID,
		ReceiverID:    req.RecipientID,
		Content:       req.Content,
		RequestStatus: status,
	}
	if err := s.msgRepo.Create(msg); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.cache.Invalidate(ctx,
		cache.MessageCountsKey(senderID), cache.MessageCountsKey(req.RecipientID))
	logger.CtxInfo(ctx, "Message sent",
		"message_id", msg.ID, "recipient_id", req.RecipientID, "status", string(status))

	return &dto.SendMessageResponse{
		Success:   true,
		MessageID: msg.ID,
		Content:   msg.Content,
		Time:      msg.CreatedAt.Format(sendTimeFormat),
		Status:    string(status),
	}, nil
}

// SendToUsername resolves the recipient by username and delegates to
// Send. The pre-v1 endpoint addresses users this way.
func (s *MessageServiceImpl) SendToUsername(ctx context.Context, senderID uint, username, content string) (*dto.SendMessageResponse, error) {
	recipient, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return s.Send(ctx, senderID, &dto.SendMessageRequest{RecipientID: recipient.ID, Content: content})
}

// requestStatusFor computes the message gate: approved when the parties
// are connected or share approved history, pending otherwise. History
// outlives a removed connection.
func (s *MessageServiceImpl) requestStatusFor(senderID, receiverID uint) (models.MessageRequestStatus, error) {
	if _, err := s.connRepo.FindAcceptedBetween(senderID, receiverID); err == nil {
		return models.MessageRequestApproved, nil
	} else if !errors.Is(err, repositories.ErrConnectionNotFound) {
		return "", apperrors.DatabaseError(err)
	}

	prior, err := s.msgRepo.ApprovedBetweenExists(senderID, receiverID)
	if err != nil {
		return "", apperrors.DatabaseError(err)
	}
	if prior {
		return models.MessageRequestApproved, nil
	}
	return models.MessageRequestPending, nil
}

// DeleteConversation removes the full history with the partner in both
// directions, pending and declined rows included.
func (s *MessageServiceImpl) DeleteConversation(ctx context.Context, userID uint, username string) error {
	partner, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if err := s.msgRepo.DeleteBetween(userID, partner.ID); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.cache.Invalidate(ctx,
		cache.MessageCountsKey(userID), cache.MessageCountsKey(partner.ID))
	logger.CtxInfo(ctx, "Conversation deleted", "user_id", userID, "partner_id", partner.ID)
	return nil
}

func (s *MessageServiceImpl) Counts(ctx context.Context, userID uint) (*dto.MessageCountsResponse, error) {
	key := cache.MessageCountsKey(userID)
	if data, ok := s.cache.Get(ctx, key); ok {
		var resp dto.MessageCountsResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		s.cache.Invalidate(ctx, key)
	}

	unread, err := s.msgRepo.UnreadApprovedCount(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	pending, err := s.msgRepo.PendingCount(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.MessageCountsResponse{UnreadCount: unread, PendingCount: pending}
	if data, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, key, data, messageCountsCacheTTL)
	}
	return resp, nil
}

func (s *MessageServiceImpl) toMessageDTO(msg *models.Message, userID uint, timeFormat string) dto.MessageDTO {
	return dto.MessageDTO{
		ID:        msg.ID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		Time:      msg.CreatedAt.Format(timeFormat),
		Read:      msg.Read,
		Status:    string(msg.RequestStatus),
		IsMine:    msg.SenderID == userID,
		CreatedAt: msg.CreatedAt,
	}
}
