package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coverly/intake/internal/controller"
	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/repository"
)

type UserController struct {
	userRepo repository.UserRepository
}

func NewUserController(userRepo repository.UserRepository) *UserController {
	return &UserController{userRepo: userRepo}
}

// ListUsers godoc
// @Summary (Admin) List users by role
// @Description Feeds the assignment dropdown on the application form. Defaults to the user role.
// @Tags Admin - Users
// @Produce json
// @Param role query string false "Role to filter by" Enums(admin, reviewer, user)
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown role"
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	role := model.Role(ctx.DefaultQuery("role", string(model.RoleUser)))
	if !role.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unknown role"})
		return
	}

	users, err := c.userRepo.FindAllByRole(role)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.UserResponse{ID: u.ID, Name: u.Name, Role: string(u.Role)})
	}
	ctx.JSON(http.StatusOK, resp)
}
