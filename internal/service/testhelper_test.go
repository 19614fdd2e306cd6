package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coverly/intake/internal/broadcast"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/repository"
	"github.com/coverly/intake/internal/validation"
)

// setupTestDB creates an in-memory SQLite DB with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Application{},
		&model.ApplicationAnswer{},
		&model.Comment{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// recordingBroker captures published events instead of fanning them out.
type recordingBroker struct {
	events []broadcast.Event
}

func (b *recordingBroker) Publish(event broadcast.Event)     { b.events = append(b.events, event) }
func (b *recordingBroker) Subscribe() *broadcast.Subscriber  { return nil }
func (b *recordingBroker) Unsubscribe(*broadcast.Subscriber) {}

type testEnv struct {
	db        *gorm.DB
	apps      ApplicationService
	comments  CommentService
	questions QuestionService
	broker    *recordingBroker

	admin    *model.User
	reviewer *model.User
	user     *model.User
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	broker := &recordingBroker{}

	env := &testEnv{
		db:        db,
		apps:      NewApplicationService(appRepo, questionRepo, answerRepo, userRepo, validation.NewEngine()),
		comments:  NewCommentService(commentRepo, appRepo, broker),
		questions: NewQuestionService(questionRepo),
		broker:    broker,
		admin:     &model.User{Name: "Ade Admin", Email: "ade@example.com", Role: model.RoleAdmin},
		reviewer:  &model.User{Name: "Rhea Reviewer", Email: "rhea@example.com", Role: model.RoleReviewer},
		user:      &model.User{Name: "Uma User", Email: "uma@example.com", Role: model.RoleUser},
	}

	for _, u := range []*model.User{env.admin, env.reviewer, env.user} {
		if err := userRepo.Create(u); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	seed := []model.Question{
		{Key: "age", Label: "What is your age?", Type: model.QuestionNumber, Order: 1, IsRequired: true},
		{Key: "isSmoker", Label: "Are you a smoker?", Type: model.QuestionSelect, Options: model.StringList{"Yes", "No"}, Order: 2, IsRequired: true},
		{Key: "notes", Label: "Notes", Type: model.QuestionTextarea, Order: 3, IsRequired: false},
	}
	for i := range seed {
		if err := questionRepo.Create(&seed[i]); err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
	}

	return env
}

func validAnswers() map[string]string {
	return map[string]string{"age": "30", "isSmoker": "No"}
}
