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

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(applicationService service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// ListApplications godoc
// @Summary List applications visible to the acting user
// @Description Admins see everything, reviewers see applications under review or reviewed, users see their own and assigned applications.
// @Tags Applications
// @Produce json
// @Success 200 {array} dto.ApplicationSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)
	apps, err := c.applicationService.ListApplications(actor)
	if err != nil {
		log.Error().Err(err).Msg("ListApplications: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, apps)
}

// GetApplication godoc
// @Summary View one application with answers and comments
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationDetail
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	actor := middleware.CurrentUser(ctx)
	app, err := c.applicationService.GetApplication(actor, id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, app)
}

// CreateApplication godoc
// @Summary Submit a new application
// @Description Answers are validated against the live question registry; every violation comes back at once under answers.<key>.
// @Tags Applications
// @Accept json
// @Produce json
// @Param application body dto.ApplicationRequest true "Application data"
// @Success 201 {object} dto.ApplicationDetail
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateApplication: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	actor := middleware.CurrentUser(ctx)
	app, err := c.applicationService.CreateApplication(actor, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, app)
}

// UpdateApplication godoc
// @Summary Update an application
// @Description Status is forced by role: user edits land on Submitted, reviewer edits on Reviewed; only admins set status freely.
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param application body dto.ApplicationRequest true "Application data"
// @Success 200 {object} dto.ApplicationDetail
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	actor := middleware.CurrentUser(ctx)
	app, err := c.applicationService.UpdateApplication(actor, id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete an application
// @Description Hard delete; answers and comments go with it.
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [delete]
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	actor := middleware.CurrentUser(ctx)
	if err := c.applicationService.DeleteApplication(actor, id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
