package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coverly/intake/internal/model"
)

type AnswerRepository interface {
	Upsert(answer *model.ApplicationAnswer) error
	FindByApplicationID(applicationID uint) ([]model.ApplicationAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Upsert writes the value for one (application, question) pair. Conflicts on
// the composite unique index overwrite the prior answer, so re-submission
// never duplicates rows.
func (r *answerRepository) Upsert(answer *model.ApplicationAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
	}).Create(answer).Error
}

func (r *answerRepository) FindByApplicationID(applicationID uint) ([]model.ApplicationAnswer, error) {
	var answers []model.ApplicationAnswer
	err := r.db.
		Preload("Question").
		Where("application_id = ?", applicationID).
		Find(&answers).Error
	return answers, err
}
