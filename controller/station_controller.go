// controller/station_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/middleware"
	"github.com/evgrid/console/model"
	"github.com/evgrid/console/service"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	helper_util "github.com/evgrid/console/util/helper"
	"github.com/evgrid/console/validation"
)

type StationController struct {
	stationService service.IStationService
}

func NewStationController(stationService service.IStationService) *StationController {
	return &StationController{
		stationService: stationService,
	}
}

// RegisterRoutes registers the charging station administration routes.
func (sc *StationController) RegisterRoutes(r gin.IRouter) {
	stations := r.Group("/stations")
	{
		stations.GET("", sc.ListStations)
		stations.POST("", sc.CreateStation)
		stations.GET("/:id", sc.GetStation)
		stations.PUT("/:id", sc.UpdateStation)
		stations.PATCH("/:id/status", sc.SetStationStatus)
		stations.PUT("/:id/schedule", sc.UpdateSchedule)
	}
}

// ListStations endpoint
func (sc *StationController) ListStations(c *gin.Context) {
	q, page, pageSize, err := helper_util.GetListParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	list, err := sc.stationService.List(c, middleware.TokenFromContext(c), upstream.StationFilter{
		Query:    q,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list stations")
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateStation endpoint
func (sc *StationController) CreateStation(c *gin.Context) {
	var form validation.StationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid station data", console_errors.ErrInvalidStationData)
		return
	}

	station, err := sc.stationService.Create(c, middleware.TokenFromContext(c), form)
	if err != nil {
		respondServiceError(c, err, "Failed to create station")
		return
	}

	c.JSON(http.StatusCreated, station)
}

// GetStation endpoint
func (sc *StationController) GetStation(c *gin.Context) {
	station, err := sc.stationService.Get(c, middleware.TokenFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve station")
		return
	}

	c.JSON(http.StatusOK, station)
}

// UpdateStation endpoint
func (sc *StationController) UpdateStation(c *gin.Context) {
	var form validation.StationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid station data", console_errors.ErrInvalidStationData)
		return
	}

	station, err := sc.stationService.Update(c, middleware.TokenFromContext(c), c.Param("id"), form)
	if err != nil {
		respondServiceError(c, err, "Failed to update station")
		return
	}

	c.JSON(http.StatusOK, station)
}

type stationStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// SetStationStatus endpoint toggles activation for one station.
func (sc *StationController) SetStationStatus(c *gin.Context) {
	var req stationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status data", err)
		return
	}

	err := sc.stationService.SetActive(c, middleware.TokenFromContext(c), c.Param("id"), req.IsActive)
	if err != nil {
		respondServiceError(c, err, "Failed to change station status")
		return
	}

	c.Status(http.StatusNoContent)
}

type scheduleRequest struct {
	ReplaceAll bool                `json:"replaceAll"`
	Days       []model.ScheduleDay `json:"days"`
}

// UpdateSchedule endpoint replaces or merges the day-by-day availability.
func (sc *StationController) UpdateSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid schedule data", console_errors.ErrInvalidSchedule)
		return
	}

	station, err := sc.stationService.UpdateSchedule(c, middleware.TokenFromContext(c), c.Param("id"), req.Days, req.ReplaceAll)
	if err != nil {
		respondServiceError(c, err, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, station)
}
