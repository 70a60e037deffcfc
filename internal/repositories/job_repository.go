package repositories

import (
	"errors"

	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job posting not found")

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByID(id uint) (*models.JobPosting, error)
	Deactivate(id uint) error
	// ActiveWithFilter lists active postings, optionally narrowed by a
	// free-text search and a location filter.
	ActiveWithFilter(search, location string) ([]models.JobPosting, error)
	SearchActive(query string) ([]models.JobPosting, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.Preload("PostedBy").First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Deactivate(id uint) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ActiveWithFilter(search, location string) ([]models.JobPosting, error) {
	query := r.db.Preload("PostedBy").Where("is_active = ?", true)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR company LIKE ? OR description LIKE ?",
			pattern, pattern, pattern)
	}
	if location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}

	var jobs []models.JobPosting
	if err := query.Order("created_at desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) SearchActive(query string) ([]models.JobPosting, error) {
	return r.ActiveWithFilter(query, "")
}
