// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evgrid/console/controller"
	"github.com/evgrid/console/middleware"
	"github.com/evgrid/console/model"
)

// SetupRouter assembles the console API. Routes nest the way the screens
// gate: an outer authentication group, then Backoffice-only and
// Operator-only groups, with the self-service profile routes open to any
// signed-in staff.
func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Login is the only unauthenticated route and the only rate-limited one.
	login := api.Group("")
	login.Use(middleware.NewRateLimiter(rateLimitRequests, rateLimitDuration).Middleware())
	controllers.Auth.RegisterRoutes(login)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth())

	controllers.Dashboard.RegisterRoutes(authed)
	controllers.User.RegisterProfileRoutes(authed)

	backoffice := authed.Group("/backoffice")
	backoffice.Use(middleware.RequireRole(model.RoleBackoffice))
	{
		controllers.Dashboard.RegisterBackofficeRoutes(backoffice)
		controllers.Owner.RegisterRoutes(backoffice)
		controllers.Station.RegisterRoutes(backoffice)
		controllers.Booking.RegisterRoutes(backoffice)
		controllers.User.RegisterRoutes(backoffice)
		controllers.Auth.RegisterProtectedRoutes(backoffice)
	}

	operator := authed.Group("/operator")
	operator.Use(middleware.RequireRole(model.RoleOperator))
	{
		controllers.Dashboard.RegisterOperatorRoutes(operator)
		controllers.Booking.RegisterOperatorRoutes(operator)
	}

	return router
}
