package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/coverly/intake/internal/model"
)

// SeedQuestions inserts the default insurance question set when the registry
// is empty. Re-running is a no-op.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions := []model.Question{
		{Key: "age", Label: "What is your age?", Type: model.QuestionNumber, IsRequired: true},
		{Key: "insuranceType", Label: "Type of insurance interested in", Type: model.QuestionSelect, Options: model.StringList{"Health", "Life", "Vehicle", "Home"}, IsRequired: true},
		{Key: "existingConditions", Label: "Do you have any existing medical conditions?", Type: model.QuestionTextarea, IsRequired: true},
		{Key: "currentInsuranceProvider", Label: "Current Insurance Provider", Type: model.QuestionText, IsRequired: false},
		{Key: "coverageAmount", Label: "Desired Coverage Amount (in USD)", Type: model.QuestionNumber, IsRequired: true},
		{Key: "isSmoker", Label: "Are you a smoker?", Type: model.QuestionSelect, Options: model.StringList{"Yes", "No"}, IsRequired: true},
		{Key: "annualIncome", Label: "Annual Income (in USD)", Type: model.QuestionNumber, IsRequired: true},
		{Key: "numberOfDependents", Label: "Number of Dependents", Type: model.QuestionNumber, IsRequired: false},
		{Key: "vehicleOwnership", Label: "Do you own a vehicle?", Type: model.QuestionSelect, Options: model.StringList{"Yes", "No"}, IsRequired: false},
		{Key: "employmentStatus", Label: "Employment Status", Type: model.QuestionSelect, Options: model.StringList{"Employed", "Self-Employed", "Unemployed", "Student"}, IsRequired: true},
	}

	for i := range questions {
		questions[i].Order = i + 1
		if err := db.Create(&questions[i]).Error; err != nil {
			log.Error().Err(err).Str("key", questions[i].Key).Msg("Failed to seed question")
			return err
		}
	}

	log.Info().Int("count", len(questions)).Msg("Seeded insurance questions")
	return nil
}
