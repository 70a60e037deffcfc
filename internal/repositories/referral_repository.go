package repositories

import (
	"errors"

	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReferralRequestNotFound = errors.New("referral request not found")
	ErrReferralNotFound        = errors.New("referral not found")
)

type ReferralRepository interface {
	CreateRequest(req *models.ReferralRequest) error
	FindRequestByID(id uint) (*models.ReferralRequest, error)
	OpenRequests(excludeSeekerID uint) ([]models.ReferralRequest, error)
	RequestsBySeeker(seekerID uint) ([]models.ReferralRequest, error)

	CreateReferral(ref *models.JobReferral) error
	GivenBy(referrerID uint) ([]models.JobReferral, error)
	ReceivedBy(candidateID uint) ([]models.JobReferral, error)
	RecentReceivedBy(candidateID uint, limit int) ([]models.JobReferral, error)

	// RespondToRequest creates the response referral and marks the
	// request fulfilled in a single transaction.
	RespondToRequest(ref *models.JobReferral, requestID uint) error
}

type ReferralRepositoryImpl struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &ReferralRepositoryImpl{db: db}
}

func (r *ReferralRepositoryImpl) CreateRequest(req *models.ReferralRequest) error {
	return r.db.Create(req).Error
}

func (r *ReferralRepositoryImpl) FindRequestByID(id uint) (*models.ReferralRequest, error) {
	var req models.ReferralRequest
	err := r.db.Preload("JobSeeker").First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// OpenRequests lists the marketplace: open requests from everyone except
// the viewer, newest first.
func (r *ReferralRepositoryImpl) OpenRequests(excludeSeekerID uint) ([]models.ReferralRequest, error) {
	var reqs []models.ReferralRequest
	err := r.db.Preload("JobSeeker").
		Where("status = ? AND job_seeker_id <> ?", models.ReferralRequestOpen, excludeSeekerID).
		Order("created_at desc").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *ReferralRepositoryImpl) RequestsBySeeker(seekerID uint) ([]models.ReferralRequest, error) {
	var reqs []models.ReferralRequest
	err := r.db.
		Where("job_seeker_id = ?", seekerID).
		Order("created_at desc").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *ReferralRepositoryImpl) CreateReferral(ref *models.JobReferral) error {
	return r.db.Create(ref).Error
}

func (r *ReferralRepositoryImpl) GivenBy(referrerID uint) ([]models.JobReferral, error) {
	var refs []models.JobReferral
	err := r.db.Preload("Candidate").
		Where("referrer_id = ?", referrerID).
		Order("created_at desc").
		Find(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *ReferralRepositoryImpl) ReceivedBy(candidateID uint) ([]models.JobReferral, error) {
	var refs []models.JobReferral
	err := r.db.Preload("Referrer").
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *ReferralRepositoryImpl) RecentReceivedBy(candidateID uint, limit int) ([]models.JobReferral, error) {
	var refs []models.JobReferral
	err := r.db.Preload("Referrer").
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Limit(limit).
		Find(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *ReferralRepositoryImpl) RespondToRequest(ref *models.JobReferral, requestID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ref).Error; err != nil {
			return err
		}
		result := tx.Model(&models.ReferralRequest{}).Where("id = ?", requestID).
			Update("status", models.ReferralRequestFulfilled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReferralRequestNotFound
		}
		return nil
	})
}
