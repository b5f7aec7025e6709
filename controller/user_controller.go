// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/middleware"
	"github.com/evgrid/console/service"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	helper_util "github.com/evgrid/console/util/helper"
	"github.com/evgrid/console/validation"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the Backoffice web-user administration routes.
func (uc *UserController) RegisterRoutes(r gin.IRouter) {
	staff := r.Group("/staff")
	{
		staff.GET("", uc.ListStaff)
		staff.POST("", uc.RegisterStaff)
		staff.PATCH("/:id", uc.UpdateStaff)
		staff.PATCH("/:id/status", uc.SetStaffStatus)
	}
}

// RegisterProfileRoutes registers the self-service routes shared by every
// signed-in user.
func (uc *UserController) RegisterProfileRoutes(r gin.IRouter) {
	me := r.Group("/me")
	{
		me.GET("/profile", uc.GetMyProfile)
		me.PUT("/profile", uc.UpdateMyProfile)
		me.PUT("/password", uc.ChangeMyPassword)
	}
}

// ListStaff endpoint
func (uc *UserController) ListStaff(c *gin.Context) {
	q, page, pageSize, err := helper_util.GetListParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	list, err := uc.userService.List(c, middleware.TokenFromContext(c), upstream.StaffFilter{
		Query:    q,
		Role:     c.Query("role"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list web users")
		return
	}

	c.JSON(http.StatusOK, list)
}

// RegisterStaff endpoint
func (uc *UserController) RegisterStaff(c *gin.Context) {
	var form validation.StaffRegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid web user data", console_errors.ErrInvalidStaffData)
		return
	}

	row, err := uc.userService.Register(c, middleware.TokenFromContext(c), form)
	if err != nil {
		respondServiceError(c, err, "Failed to register web user")
		return
	}

	c.JSON(http.StatusCreated, row)
}

// UpdateStaff endpoint
func (uc *UserController) UpdateStaff(c *gin.Context) {
	var form validation.StaffEditForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid web user data", console_errors.ErrInvalidStaffData)
		return
	}

	err := uc.userService.Update(c, middleware.TokenFromContext(c), c.Param("id"), form)
	if err != nil {
		respondServiceError(c, err, "Failed to update web user")
		return
	}

	c.Status(http.StatusNoContent)
}

type staffStatusRequest struct {
	IsActive bool   `json:"isActive"`
	Reason   string `json:"reason"`
}

// SetStaffStatus endpoint toggles activation for one web user.
func (uc *UserController) SetStaffStatus(c *gin.Context) {
	var req staffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status data", err)
		return
	}

	err := uc.userService.SetStatus(c, middleware.TokenFromContext(c), c.Param("id"), req.IsActive, req.Reason)
	if err != nil {
		respondServiceError(c, err, "Failed to change web user status")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMyProfile endpoint
func (uc *UserController) GetMyProfile(c *gin.Context) {
	profile, err := uc.userService.GetMyProfile(c, middleware.TokenFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile endpoint
func (uc *UserController) UpdateMyProfile(c *gin.Context) {
	var form validation.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid profile data", err)
		return
	}

	profile, err := uc.userService.UpdateMyProfile(c, middleware.TokenFromContext(c), form)
	if err != nil {
		respondServiceError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ChangeMyPassword endpoint
func (uc *UserController) ChangeMyPassword(c *gin.Context) {
	var form validation.PasswordChangeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password data", err)
		return
	}

	err := uc.userService.ChangeMyPassword(c, middleware.TokenFromContext(c), form)
	if err != nil {
		respondServiceError(c, err, "Failed to change password")
		return
	}

	c.Status(http.StatusNoContent)
}
