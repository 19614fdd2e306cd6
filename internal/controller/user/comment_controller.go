package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coverly/intake/internal/controller"
	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/middleware"
	"github.com/coverly/intake/internal/service"
)

type CommentController struct {
	commentService service.CommentService
}

func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// AddComment godoc
// @Summary Add a comment to an application
// @Description Reviewer/admin only. Body is capped at 1000 characters on create. Publishes comment.created on success.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param comment body dto.CommentRequest true "Comment body"
// @Success 201 {object} dto.CommentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /applications/{id}/comments [post]
func (c *CommentController) AddComment(ctx *gin.Context) {
	applicationID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	actor := middleware.CurrentUser(ctx)
	comment, err := c.commentService.AddComment(actor, applicationID, req)
	if err != nil {
		log.Warn().Err(err).Uint("applicationID", applicationID).Msg("AddComment: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Author or admin only. Body is capped at 2000 characters on edit. Publishes comment.updated on success.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param comment_id path int true "Comment ID"
// @Param comment body dto.CommentRequest true "Comment body"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /applications/{id}/comments/{comment_id} [put]
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	commentID, ok := controller.ParseID(ctx, "comment_id")
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	actor := middleware.CurrentUser(ctx)
	comment, err := c.commentService.UpdateComment(actor, commentID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Author or admin only. No event is published for deletes.
// @Tags Comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /comments/{comment_id} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	commentID, ok := controller.ParseID(ctx, "comment_id")
	if !ok {
		return
	}
	actor := middleware.CurrentUser(ctx)
	if err := c.commentService.DeleteComment(actor, commentID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
