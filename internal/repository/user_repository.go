package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/coverly/intake/internal/model"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindAllByRole(role model.Role) ([]model.User, error)
	Exists(id uint) (bool, error)
	Create(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAllByRole(role model.Role) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("role = ?", role).Order("name ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) Exists(id uint) (bool, error) {
	var user model.User
	err := r.db.Select("id").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}
