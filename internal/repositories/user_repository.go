package repositories

import (
	"errors"

	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByResumeFile(filename string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateProfileImage(userID uint, filename string) error
	UpdateResumeFile(userID uint, filename string) error
	SearchPeople(query string, excludeID uint) ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByResumeFile(filename string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "resume_file = ?", filename).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateProfileImage(userID uint, filename string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_image", filename).Error
}

func (r *UserRepositoryImpl) UpdateResumeFile(userID uint, filename string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("resume_file", filename).Error
}

// SearchPeople matches the query against name, username, headline and
// current company. The requesting user is excluded from results.
func (r *UserRepositoryImpl) SearchPeople(query string, excludeID uint) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.
		Where("id <> ?", excludeID).
		Where(
			r.db.Where("username LIKE ?", pattern).
				Or("first_name LIKE ?", pattern).
				Or("last_name LIKE ?", pattern).
				Or("headline LIKE ?", pattern).
				Or("current_company LIKE ?", pattern),
		).
		Order("username asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
