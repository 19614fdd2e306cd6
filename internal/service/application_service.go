package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/policy"
	"github.com/coverly/intake/internal/repository"
	"github.com/coverly/intake/internal/validation"
	"github.com/coverly/intake/internal/workflow"
)

type ApplicationService interface {
	ListApplications(actor *model.User) ([]dto.ApplicationSummary, error)
	GetApplication(actor *model.User, id uint) (*dto.ApplicationDetail, error)
	CreateApplication(actor *model.User, req dto.ApplicationRequest) (*dto.ApplicationDetail, error)
	UpdateApplication(actor *model.User, id uint, req dto.ApplicationRequest) (*dto.ApplicationDetail, error)
	DeleteApplication(actor *model.User, id uint) error
}

type applicationService struct {
	appRepo      repository.ApplicationRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	userRepo     repository.UserRepository
	engine       *validation.Engine
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	userRepo repository.UserRepository,
	engine *validation.Engine,
) ApplicationService {
	return &applicationService{
		appRepo:      appRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		userRepo:     userRepo,
		engine:       engine,
	}
}

// lookupSource adapts the repositories to the validation engine's two
// storage questions.
type lookupSource struct {
	apps  repository.ApplicationRepository
	users repository.UserRepository
}

func (l lookupSource) EmailTaken(email string, excludeID uint) (bool, error) {
	return l.apps.EmailTaken(email, excludeID)
}

func (l lookupSource) UserExists(id uint) (bool, error) {
	return l.users.Exists(id)
}

func (s *applicationService) ListApplications(actor *model.User) ([]dto.ApplicationSummary, error) {
	var (
		apps []model.Application
		err  error
	)
	switch actor.Role {
	case model.RoleAdmin:
		apps, err = s.appRepo.FindAll()
	case model.RoleReviewer:
		apps, err = s.appRepo.FindAllByStatuses([]model.Status{model.StatusUnderReview, model.StatusReviewed})
	default:
		apps, err = s.appRepo.FindAllForUser(actor.ID)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		summaries = append(summaries, dto.ApplicationSummary{
			ID:             app.ID,
			Name:           app.Name,
			Email:          app.Email,
			Status:         string(app.Status),
			UserID:         app.UserID,
			AssignedUserID: app.AssignedUserID,
			CreatedAt:      app.CreatedAt.Format(time.DateTime),
		})
	}
	return summaries, nil
}

func (s *applicationService) GetApplication(actor *model.User, id uint) (*dto.ApplicationDetail, error) {
	app, err := s.appRepo.FindByIDWithDetails(id)
	if err != nil {
		return nil, apperr.NotFound("application", id)
	}
	if !policy.CanView(actor, app) {
		return nil, apperr.ErrUnauthorized
	}
	return s.toDetail(app)
}

func (s *applicationService) CreateApplication(actor *model.User, req dto.ApplicationRequest) (*dto.ApplicationDetail, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	normalized, err := s.engine.ValidateApplication(questions, inputFrom(req), 0, s.lookup())
	if err != nil {
		return nil, err
	}

	app := model.Application{
		Name:           req.Name,
		Email:          req.Email,
		Status:         workflow.NextStatus(actor.Role, model.Status(req.Status), ""),
		UserID:         actor.ID,
		AssignedUserID: workflow.ResolveAssignee(actor, req.AssignedUserID),
	}
	if err := s.appRepo.Create(&app); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create application")
		return nil, &apperr.PersistenceError{Op: "create application", Err: err}
	}

	if err := s.saveAnswers(app.ID, questions, normalized); err != nil {
		return nil, err
	}

	created, err := s.appRepo.FindByIDWithDetails(app.ID)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "reload application", Err: err}
	}
	return s.toDetail(created)
}

func (s *applicationService) UpdateApplication(actor *model.User, id uint, req dto.ApplicationRequest) (*dto.ApplicationDetail, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("application", id)
	}
	if !policy.CanUpdate(actor, app) {
		return nil, apperr.ErrUnauthorized
	}

	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	normalized, err := s.engine.ValidateApplication(questions, inputFrom(req), app.ID, s.lookup())
	if err != nil {
		return nil, err
	}

	app.Name = req.Name
	app.Email = req.Email
	app.Status = workflow.NextStatus(actor.Role, model.Status(req.Status), app.Status)
	app.AssignedUserID = workflow.ResolveAssignee(actor, req.AssignedUserID)

	if err := s.appRepo.Update(app); err != nil {
		log.Error().Err(err).Uint("applicationID", id).Msg("Failed to update application")
		return nil, &apperr.PersistenceError{Op: "update application", Err: err}
	}

	if err := s.saveAnswers(app.ID, questions, normalized); err != nil {
		return nil, err
	}

	updated, err := s.appRepo.FindByIDWithDetails(app.ID)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "reload application", Err: err}
	}
	return s.toDetail(updated)
}

func (s *applicationService) DeleteApplication(actor *model.User, id uint) error {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return apperr.NotFound("application", id)
	}
	if !policy.CanDeleteApplication(actor, app) {
		return apperr.ErrUnauthorized
	}
	if err := s.appRepo.Delete(id); err != nil {
		return &apperr.PersistenceError{Op: "delete application", Err: err}
	}
	return nil
}

// saveAnswers upserts one row per known question key. Keys not in the
// registry were already dropped during validation.
func (s *applicationService) saveAnswers(applicationID uint, questions []model.Question, answers map[string]string) error {
	byKey := make(map[string]uint, len(questions))
	for _, q := range questions {
		byKey[q.Key] = q.ID
	}
	for key, value := range answers {
		questionID, ok := byKey[key]
		if !ok {
			continue
		}
		answer := model.ApplicationAnswer{
			ApplicationID: applicationID,
			QuestionID:    questionID,
			Answer:        value,
		}
		if err := s.answerRepo.Upsert(&answer); err != nil {
			log.Error().Err(err).Uint("applicationID", applicationID).Str("key", key).Msg("Failed to save answer")
			return &apperr.PersistenceError{Op: "save answer", Err: err}
		}
	}
	return nil
}

func (s *applicationService) toDetail(app *model.Application) (*dto.ApplicationDetail, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(app.Answers))
	for _, a := range app.Answers {
		if a.Question.Key != "" {
			answers[a.Question.Key] = a.Answer
		}
	}

	comments := make([]dto.CommentResponse, 0, len(app.Comments))
	for _, c := range app.Comments {
		comments = append(comments, toCommentResponse(&c))
	}

	questionResp := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		questionResp = append(questionResp, toQuestionResponse(&q))
	}

	return &dto.ApplicationDetail{
		ID:             app.ID,
		Name:           app.Name,
		Email:          app.Email,
		Status:         string(app.Status),
		UserID:         app.UserID,
		AssignedUserID: app.AssignedUserID,
		Answers:        answers,
		Comments:       comments,
		Questions:      questionResp,
	}, nil
}

func (s *applicationService) lookup() validation.LookupSource {
	return lookupSource{apps: s.appRepo, users: s.userRepo}
}

func inputFrom(req dto.ApplicationRequest) validation.ApplicationInput {
	return validation.ApplicationInput{
		Name:           req.Name,
		Email:          req.Email,
		Status:         req.Status,
		AssignedUserID: req.AssignedUserID,
		Answers:        req.Answers,
	}
}
