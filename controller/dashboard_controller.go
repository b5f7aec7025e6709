// controller/dashboard_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evgrid/console/authz"
	"github.com/evgrid/console/middleware"
	"github.com/evgrid/console/service"
)

type DashboardController struct {
	dashboardService service.IDashboardService
	tree             []authz.NavNode
}

func NewDashboardController(dashboardService service.IDashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		tree:             authz.DefaultTree(),
	}
}

// RegisterRoutes registers the routes any authenticated staff may call.
func (dc *DashboardController) RegisterRoutes(r gin.IRouter) {
	r.GET("/nav", dc.Nav)
	r.GET("/dashboard", dc.Dashboard)
}

// RegisterBackofficeRoutes registers the Backoffice landing summary.
func (dc *DashboardController) RegisterBackofficeRoutes(r gin.IRouter) {
	r.GET("/summary", dc.BackofficeSummary)
}

// RegisterOperatorRoutes registers the Operator landing summary.
func (dc *DashboardController) RegisterOperatorRoutes(r gin.IRouter) {
	r.GET("/summary", dc.OperatorSummary)
}

// Nav answers the role-pruned navigation tree. With a path query it also
// resolves the access decision for that path, so a client can distinguish
// "role still resolving" from "role known and denied".
func (dc *DashboardController) Nav(c *gin.Context) {
	role := middleware.RoleFromContext(c)
	resp := gin.H{
		"role":  role,
		"items": authz.Visible(dc.tree, role),
	}
	if path := c.Query("path"); path != "" {
		resp["decision"] = authz.Resolve(dc.tree, path, true, role).String()
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard answers the role's landing target, mirroring the console's
// post-login redirect.
func (dc *DashboardController) Dashboard(c *gin.Context) {
	role := middleware.RoleFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"role":   role,
		"target": dc.dashboardService.RoleTarget(role),
	})
}

// BackofficeSummary endpoint
func (dc *DashboardController) BackofficeSummary(c *gin.Context) {
	summary, err := dc.dashboardService.BackofficeSummary(c, middleware.TokenFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// OperatorSummary endpoint
func (dc *DashboardController) OperatorSummary(c *gin.Context) {
	summary, err := dc.dashboardService.OperatorSummary(c, middleware.TokenFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
