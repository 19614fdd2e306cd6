package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/coverly/intake/internal/model"
)

type ApplicationRepository interface {
	Create(app *model.Application) error
	Update(app *model.Application) error
	FindByID(id uint) (*model.Application, error)
	FindByIDWithDetails(id uint) (*model.Application, error)
	FindAll() ([]model.Application, error)
	FindAllByStatuses(statuses []model.Status) ([]model.Application, error)
	FindAllForUser(userID uint) ([]model.Application, error)
	Delete(id uint) error
	EmailTaken(email string, excludeID uint) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) Update(app *model.Application) error {
	return r.db.Save(app).Error
}

func (r *applicationRepository) FindByID(id uint) (*model.Application, error) {
	var app model.Application
	if err := r.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByIDWithDetails(id uint) (*model.Application, error) {
	var app model.Application
	err := r.db.
		Preload("Answers.Question").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User").
		First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindAll() ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindAllByStatuses(statuses []model.Status) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("status IN ?", statuses).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindAllForUser(userID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.
		Where("user_id = ? OR assigned_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// Delete hard-deletes the application and cascades to its answers and
// comments in one transaction.
func (r *applicationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", id).Delete(&model.ApplicationAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("application_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Application{}, id).Error
	})
}

func (r *applicationRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var app model.Application
	query := r.db.Select("id").Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
