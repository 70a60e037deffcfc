package repositories

import (
	"errors"

	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	FindByID(id uint) (*models.Message, error)
	Create(msg *models.Message) error
	UpdateRequestStatus(id uint, status models.MessageRequestStatus) error

	// ApprovedBetweenExists reports whether the two users share any
	// approved message history, in either direction.
	ApprovedBetweenExists(userA, userB uint) (bool, error)
	ApprovedBetween(userA, userB uint) ([]models.Message, error)
	ApprovedForUser(userID uint) ([]models.Message, error)
	PendingForReceiver(userID uint) ([]models.Message, error)

	MarkReadFromPartner(userID, partnerID uint) error
	UnreadFromPartnerCount(userID, partnerID uint) (int64, error)
	UnreadApprovedCount(userID uint) (int64, error)
	PendingCount(userID uint) (int64, error)
	UnreadCount(userID uint) (int64, error)

	DeleteBetween(userA, userB uint) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) FindByID(id uint) (*models.Message, error) {
	var msg models.Message
	err := r.db.Preload("Sender").Preload("Receiver").First(&msg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *MessageRepositoryImpl) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *MessageRepositoryImpl) UpdateRequestStatus(id uint, status models.MessageRequestStatus) error {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).
		Update("message_request_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) ApprovedBetweenExists(userA, userB uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("message_request_status = ?", models.MessageRequestApproved).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MessageRepositoryImpl) ApprovedBetween(userA, userB uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.
		Where("message_request_status = ?", models.MessageRequestApproved).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// ApprovedForUser returns every approved message the user sent or
// received, newest first. The service layer groups these by partner.
func (r *MessageRepositoryImpl) ApprovedForUser(userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Preload("Sender").Preload("Receiver").
		Where("message_request_status = ?", models.MessageRequestApproved).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at desc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *MessageRepositoryImpl) PendingForReceiver(userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Preload("Sender").
		Where("receiver_id = ? AND message_request_status = ?", userID, models.MessageRequestPending).
		Order("created_at desc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkReadFromPartner marks the approved messages the partner sent to
// the user as read. Called when the user opens the conversation.
func (r *MessageRepositoryImpl) MarkReadFromPartner(userID, partnerID uint) error {
	return r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND message_request_status = ? AND read = ?",
			partnerID, userID, models.MessageRequestApproved, false).
		Update("read", true).Error
}

func (r *MessageRepositoryImpl) UnreadFromPartnerCount(userID, partnerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND message_request_status = ? AND read = ?",
			partnerID, userID, models.MessageRequestApproved, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) UnreadApprovedCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND message_request_status = ? AND read = ?",
			userID, models.MessageRequestApproved, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) PendingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND message_request_status = ?", userID, models.MessageRequestPending).
		Count(&count).Error
	return count, err
}

// UnreadCount counts unread messages of any request status. Used on the
// dashboard, where pending requests also deserve attention.
func (r *MessageRepositoryImpl) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// DeleteBetween removes the whole history between two users in both
// directions, regardless of request status.
func (r *MessageRepositoryImpl) DeleteBetween(userA, userB uint) error {
	return r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Delete(&models.Message{}).Error
}
