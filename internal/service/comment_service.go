package service

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/broadcast"
	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/policy"
	"github.com/coverly/intake/internal/repository"
)

// Distinct body ceilings: the create form caps at 1000, the edit form at 2000.
const (
	maxCommentCreateLen = 1000
	maxCommentUpdateLen = 2000
)

type CommentService interface {
	AddComment(actor *model.User, applicationID uint, req dto.CommentRequest) (*dto.CommentResponse, error)
	UpdateComment(actor *model.User, commentID uint, req dto.CommentRequest) (*dto.CommentResponse, error)
	DeleteComment(actor *model.User, commentID uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	appRepo     repository.ApplicationRepository
	broker      broadcast.Broker
}

func NewCommentService(commentRepo repository.CommentRepository, appRepo repository.ApplicationRepository, broker broadcast.Broker) CommentService {
	return &commentService{commentRepo: commentRepo, appRepo: appRepo, broker: broker}
}

func (s *commentService) AddComment(actor *model.User, applicationID uint, req dto.CommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.appRepo.FindByID(applicationID); err != nil {
		return nil, apperr.NotFound("application", applicationID)
	}
	if !policy.CanComment(actor) {
		return nil, apperr.ErrUnauthorized
	}
	if err := validateBody(req.Body, maxCommentCreateLen); err != nil {
		return nil, err
	}

	comment := model.Comment{
		ApplicationID: applicationID,
		UserID:        actor.ID,
		Body:          req.Body,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		log.Error().Err(err).Uint("applicationID", applicationID).Msg("Failed to create comment")
		return nil, &apperr.PersistenceError{Op: "create comment", Err: err}
	}

	return s.finish(comment.ID, broadcast.ChannelCommentAdded, broadcast.EventCommentCreated)
}

func (s *commentService) UpdateComment(actor *model.User, commentID uint, req dto.CommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, apperr.NotFound("comment", commentID)
	}
	if !policy.CanModifyComment(actor, comment) {
		return nil, apperr.ErrUnauthorized
	}
	if err := validateBody(req.Body, maxCommentUpdateLen); err != nil {
		return nil, err
	}

	comment.Body = req.Body
	if err := s.commentRepo.Update(comment); err != nil {
		log.Error().Err(err).Uint("commentID", commentID).Msg("Failed to update comment")
		return nil, &apperr.PersistenceError{Op: "update comment", Err: err}
	}

	return s.finish(comment.ID, broadcast.ChannelCommentUpdated, broadcast.EventCommentUpdated)
}

// DeleteComment removes the comment. No event is published for deletes.
func (s *commentService) DeleteComment(actor *model.User, commentID uint) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return apperr.NotFound("comment", commentID)
	}
	if !policy.CanModifyComment(actor, comment) {
		return apperr.ErrUnauthorized
	}
	if err := s.commentRepo.Delete(commentID); err != nil {
		return &apperr.PersistenceError{Op: "delete comment", Err: err}
	}
	return nil
}

// finish reloads the comment with its author and publishes the event after
// the write has committed. The publish is fire-and-forget: subscribers that
// miss it simply re-fetch later, so a failed reload only skips the hint.
func (s *commentService) finish(commentID uint, channel, event string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByIDWithUser(commentID)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "reload comment", Err: err}
	}
	s.broker.Publish(broadcast.NewCommentEvent(channel, event, comment))
	resp := toCommentResponse(comment)
	return &resp, nil
}

func validateBody(body string, max int) error {
	if strings.TrimSpace(body) == "" {
		return apperr.NewValidation("body", "The comment field is required.")
	}
	if len(body) > max {
		return apperr.NewValidation("body", "The comment is too long.")
	}
	return nil
}

func toCommentResponse(c *model.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.DateTime),
		UpdatedAt: c.UpdatedAt.Format(time.DateTime),
		User: dto.CommentUser{
			ID:   c.User.ID,
			Name: c.User.Name,
			Role: string(c.User.Role),
		},
	}
}
