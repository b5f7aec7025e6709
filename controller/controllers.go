// controller/controllers.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/service"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	"github.com/evgrid/console/validation"
)

type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Owner     *OwnerController
	Station   *StationController
	Booking   *BookingController
	User      *UserController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services.Auth),
		Dashboard: NewDashboardController(services.Dashboard),
		Owner:     NewOwnerController(services.Owner),
		Station:   NewStationController(services.Station),
		Booking:   NewBookingController(services.Booking),
		User:      NewUserController(services.User),
	}
}

// respondServiceError maps the error families a service can return onto
// HTTP answers. Field-level validation and the booking temporal rules
// come back as 422, a busy row as 409, and anything from the backend
// passes through with its normalized message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": fe})
		return
	}
	if validation.IsRuleError(err) {
		util.RespondWithError(c, http.StatusUnprocessableEntity, err.Error(), err)
		return
	}

	switch {
	case errors.Is(err, console_errors.ErrRowBusy):
		util.RespondWithError(c, http.StatusConflict, "Another change for this row is still in progress", err)
	case errors.Is(err, console_errors.ErrNoStationAssigned):
		util.RespondWithError(c, http.StatusConflict, "No station assigned to this operator", err)
	case errors.Is(err, console_errors.ErrOwnerNotFound),
		errors.Is(err, console_errors.ErrStationNotFound),
		errors.Is(err, console_errors.ErrBookingNotFound),
		errors.Is(err, console_errors.ErrStaffNotFound):
		util.RespondWithError(c, http.StatusNotFound, err.Error(), err)
	default:
		var ue *upstream.Error
		if errors.As(err, &ue) {
			util.RespondUpstreamError(c, err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}
