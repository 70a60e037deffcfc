package repositories

import (
	"errors"

	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrConnectionNotFound = errors.New("connection not found")

type ConnectionRepository interface {
	FindByID(id uint) (*models.Connection, error)
	// FindActiveBetween returns the pending or accepted connection row
	// between two users in either direction. Declined rows do not count.
	FindActiveBetween(userA, userB uint) (*models.Connection, error)
	FindAcceptedBetween(userA, userB uint) (*models.Connection, error)
	Create(conn *models.Connection) error
	UpdateStatus(id uint, status models.ConnectionStatus) error
	Delete(id uint) error

	AcceptedPartners(userID uint) ([]models.User, error)
	RecentAcceptedPartners(userID uint, limit int) ([]models.User, error)
	IncomingPending(userID uint) ([]models.Connection, error)
	OutgoingPending(userID uint) ([]models.Connection, error)
	CountPendingIncoming(userID uint) (int64, error)
}

type ConnectionRepositoryImpl struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &ConnectionRepositoryImpl{db: db}
}

func (r *ConnectionRepositoryImpl) FindByID(id uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.Preload("Sender").Preload("Receiver").First(&conn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepositoryImpl) FindActiveBetween(userA, userB uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.
		Where("status IN ?", []models.ConnectionStatus{models.ConnectionStatusPending, models.ConnectionStatusAccepted}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepositoryImpl) FindAcceptedBetween(userA, userB uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.
		Where("status = ?", models.ConnectionStatusAccepted).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepositoryImpl) Create(conn *models.Connection) error {
	return r.db.Create(conn).Error
}

func (r *ConnectionRepositoryImpl) UpdateStatus(id uint, status models.ConnectionStatus) error {
	result := r.db.Model(&models.Connection{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

func (r *ConnectionRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Connection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

// AcceptedPartners returns the users on the other side of every accepted
// connection, regardless of who sent the original request.
func (r *ConnectionRepositoryImpl) AcceptedPartners(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins(`JOIN connections ON (connections.sender_id = users.id AND connections.receiver_id = ?)
			OR (connections.receiver_id = users.id AND connections.sender_id = ?)`, userID, userID).
		Where("connections.status = ?", models.ConnectionStatusAccepted).
		Order("connections.updated_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *ConnectionRepositoryImpl) RecentAcceptedPartners(userID uint, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins(`JOIN connections ON (connections.sender_id = users.id AND connections.receiver_id = ?)
			OR (connections.receiver_id = users.id AND connections.sender_id = ?)`, userID, userID).
		Where("connections.status = ?", models.ConnectionStatusAccepted).
		Order("connections.updated_at desc").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *ConnectionRepositoryImpl) IncomingPending(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.Preload("Sender").
		Where("receiver_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Order("created_at desc").
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

func (r *ConnectionRepositoryImpl) OutgoingPending(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.Preload("Receiver").
		Where("sender_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Order("created_at desc").
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

func (r *ConnectionRepositoryImpl) CountPendingIncoming(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("receiver_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Count(&count).Error
	return count, err
}
