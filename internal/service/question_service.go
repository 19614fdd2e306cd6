package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/repository"
	"github.com/coverly/intake/internal/validation"
)

type QuestionService interface {
	ListQuestions() ([]dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	CreateQuestion(req dto.QuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) ListQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, toQuestionResponse(&q))
	}
	return resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("question", id)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) CreateQuestion(req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	if err := s.checkKey(req.Key, 0); err != nil {
		return nil, err
	}

	question := model.Question{}
	copier.Copy(&question, &req)
	question.Type = model.QuestionType(req.Type)
	question.Options = validation.NormalizeOptions(question.Type, req.Options)

	if question.Type == model.QuestionSelect && len(question.Options) == 0 {
		return nil, apperr.NewValidation("options", "Please provide at least one option.")
	}

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Str("key", req.Key).Msg("Failed to create question")
		return nil, &apperr.PersistenceError{Op: "create question", Err: err}
	}
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("question", id)
	}
	if err := s.checkKey(req.Key, id); err != nil {
		return nil, err
	}

	question.Label = req.Label
	question.Key = req.Key
	question.Type = model.QuestionType(req.Type)
	question.Order = req.Order
	question.IsRequired = req.IsRequired
	question.Options = validation.NormalizeOptions(question.Type, req.Options)

	if question.Type == model.QuestionSelect && len(question.Options) == 0 {
		return nil, apperr.NewValidation("options", "Please provide at least one option.")
	}

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, &apperr.PersistenceError{Op: "update question", Err: err}
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

// DeleteQuestion removes the registry entry only. Answers already stored
// against it stay in place (they are just never rendered again).
func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apperr.NotFound("question", id)
	}
	return s.repo.Delete(id)
}

func (s *questionService) checkKey(key string, excludeID uint) error {
	exists, err := s.repo.KeyExists(key, excludeID)
	if err != nil {
		return &apperr.PersistenceError{Op: "check question key", Err: err}
	}
	if exists {
		return &apperr.DuplicateKeyError{Key: key}
	}
	return nil
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	resp.Type = string(q.Type)
	resp.Options = q.Options
	return resp
}
