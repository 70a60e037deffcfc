package repositories

import (
	"errors"

	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
)

// ProfileRepository manages the collections hanging off a user profile:
// skills, work experiences and education entries.
type ProfileRepository interface {
	SkillsByUser(userID uint) ([]models.UserSkill, error)
	SkillExists(userID uint, skillName string) (bool, error)
	CreateSkill(skill *models.UserSkill) error
	FindSkill(id, userID uint) (*models.UserSkill, error)
	DeleteSkill(id, userID uint) error

	ExperiencesByUser(userID uint) ([]models.Experience, error)
	CreateExperience(exp *models.Experience) error
	FindExperience(id, userID uint) (*models.Experience, error)
	UpdateExperience(exp *models.Experience) error
	DeleteExperience(id, userID uint) error

	EducationsByUser(userID uint) ([]models.Education, error)
	CreateEducation(edu *models.Education) error
	FindEducation(id, userID uint) (*models.Education, error)
	UpdateEducation(edu *models.Education) error
	DeleteEducation(id, userID uint) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Skills

func (r *ProfileRepositoryImpl) SkillsByUser(userID uint) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.Where("user_id = ?", userID).Order("skill_name asc").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *ProfileRepositoryImpl) SkillExists(userID uint, skillName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserSkill{}).
		Where("user_id = ? AND skill_name = ?", userID, skillName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProfileRepositoryImpl) CreateSkill(skill *models.UserSkill) error {
	return r.db.Create(skill).Error
}

func (r *ProfileRepositoryImpl) FindSkill(id, userID uint) (*models.UserSkill, error) {
	var skill models.UserSkill
	err := r.db.First(&skill, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *ProfileRepositoryImpl) DeleteSkill(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserSkill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

// Experiences

func (r *ProfileRepositoryImpl) ExperiencesByUser(userID uint) ([]models.Experience, error) {
	var exps []models.Experience
	// current roles first, then newest start date
	err := r.db.Where("user_id = ?", userID).
		Order("current desc, start_date desc").
		Find(&exps).Error
	if err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *ProfileRepositoryImpl) CreateExperience(exp *models.Experience) error {
	return r.db.Create(exp).Error
}

func (r *ProfileRepositoryImpl) FindExperience(id, userID uint) (*models.Experience, error) {
	var exp models.Experience
	err := r.db.First(&exp, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *ProfileRepositoryImpl) UpdateExperience(exp *models.Experience) error {
	return r.db.Save(exp).Error
}

func (r *ProfileRepositoryImpl) DeleteExperience(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Experience{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

// Education

func (r *ProfileRepositoryImpl) EducationsByUser(userID uint) ([]models.Education, error) {
	var edus []models.Education
	err := r.db.Where("user_id = ?", userID).
		Order("current desc, start_year desc").
		Find(&edus).Error
	if err != nil {
		return nil, err
	}
	return edus, nil
}

func (r *ProfileRepositoryImpl) CreateEducation(edu *models.Education) error {
	return r.db.Create(edu).Error
}

func (r *ProfileRepositoryImpl) FindEducation(id, userID uint) (*models.Education, error) {
	var edu models.Education
	err := r.db.First(&edu, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, err
	}
	return &edu, nil
}

func (r *ProfileRepositoryImpl) UpdateEducation(edu *models.Education) error {
	return r.db.Save(edu).Error
}

func (r *ProfileRepositoryImpl) DeleteEducation(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Education{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEducationNotFound
	}
	return nil
}
