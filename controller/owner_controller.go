// controller/owner_controller.go
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

type OwnerController struct {
	ownerService service.IOwnerService
}

func NewOwnerController(ownerService service.IOwnerService) *OwnerController {
	return &OwnerController{
		ownerService: ownerService,
	}
}

// RegisterRoutes registers the EV owner administration routes.
func (oc *OwnerController) RegisterRoutes(r gin.IRouter) {
	owners := r.Group("/owners")
	{
		owners.GET("", oc.ListOwners)
		owners.POST("", oc.CreateOwner)
		owners.GET("/:nic", oc.GetOwner)
		owners.PUT("/:nic", oc.UpdateOwner)
		owners.PATCH("/:nic/status", oc.SetOwnerStatus)
	}
}

// ListOwners endpoint
func (oc *OwnerController) ListOwners(c *gin.Context) {
	q, page, pageSize, err := helper_util.GetListParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	isActive, err := helper_util.GetBoolParam(c, "isActive")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid isActive parameter", err)
		return
	}

	list, err := oc.ownerService.List(c, middleware.TokenFromContext(c), upstream.OwnerFilter{
		Query:    q,
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list owners")
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateOwner endpoint
func (oc *OwnerController) CreateOwner(c *gin.Context) {
	var form validation.OwnerCreateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid owner data", console_errors.ErrInvalidOwnerData)
		return
	}

	owner, err := oc.ownerService.Create(c, middleware.TokenFromContext(c), form)
	if err != nil {
		respondServiceError(c, err, "Failed to create owner")
		return
	}

	c.JSON(http.StatusCreated, owner)
}

// GetOwner endpoint
func (oc *OwnerController) GetOwner(c *gin.Context) {
	owner, err := oc.ownerService.Get(c, middleware.TokenFromContext(c), c.Param("nic"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve owner")
		return
	}

	c.JSON(http.StatusOK, owner)
}

// UpdateOwner endpoint
func (oc *OwnerController) UpdateOwner(c *gin.Context) {
	var form validation.OwnerEditForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid owner data", console_errors.ErrInvalidOwnerData)
		return
	}

	owner, err := oc.ownerService.Update(c, middleware.TokenFromContext(c), c.Param("nic"), form)
	if err != nil {
		respondServiceError(c, err, "Failed to update owner")
		return
	}

	c.JSON(http.StatusOK, owner)
}

type ownerStatusRequest struct {
	IsActive bool   `json:"isActive"`
	Reason   string `json:"reason"`
}

// SetOwnerStatus endpoint toggles activation for one owner.
func (oc *OwnerController) SetOwnerStatus(c *gin.Context) {
	var req ownerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status data", err)
		return
	}

	err := oc.ownerService.SetStatus(c, middleware.TokenFromContext(c), c.Param("nic"), req.IsActive, req.Reason)
	if err != nil {
		respondServiceError(c, err, "Failed to change owner status")
		return
	}

	c.Status(http.StatusNoContent)
}
