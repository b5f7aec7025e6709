// service/services.go
package service

import (
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	"github.com/evgrid/console/validation"
)

type Services struct {
	Auth      IAuthService
	Dashboard IDashboardService
	Owner     IOwnerService
	Station   IStationService
	Booking   IBookingService
	User      IUserService
}

// InitializeServices wires every service around one shared upstream
// client, form validator and per-row mutation guard.
func InitializeServices(up *upstream.Client) *Services {
	validate := validation.New()
	guard := util.NewRowGuard()
	return &Services{
		Auth:      NewAuthService(up),
		Dashboard: NewDashboardService(up),
		Owner:     NewOwnerService(up, validate, guard),
		Station:   NewStationService(up, validate, guard),
		Booking:   NewBookingService(up, validate, guard),
		User:      NewUserService(up, validate, guard),
	}
}
