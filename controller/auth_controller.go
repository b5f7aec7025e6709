// controller/auth_controller.go
package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/middleware"
	"github.com/evgrid/console/service"
	"github.com/evgrid/console/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRoutes registers the unauthenticated auth routes.
func (ac *AuthController) RegisterRoutes(r gin.IRouter) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
	}
}

// RegisterProtectedRoutes registers the staff-registration routes, which
// require a Backoffice bearer.
func (ac *AuthController) RegisterProtectedRoutes(r gin.IRouter) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/backoffice", ac.RegisterBackoffice)
		auth.POST("/register/operator", ac.RegisterOperator)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login endpoint. The role in the answer is derived from the issued
// token's claims, not trusted from the backend body.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", err)
		return
	}
	if req.Username == "" || req.Password == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Username and password are required", console_errors.ErrInvalidCredentials)
		return
	}

	result, err := ac.authService.Login(c, req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterBackoffice endpoint
func (ac *AuthController) RegisterBackoffice(c *gin.Context) {
	ac.register(c, ac.authService.RegisterBackoffice)
}

// RegisterOperator endpoint
func (ac *AuthController) RegisterOperator(c *gin.Context) {
	ac.register(c, ac.authService.RegisterOperator)
}

func (ac *AuthController) register(c *gin.Context, op func(ctx context.Context, token, email, password string) error) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", err)
		return
	}

	token := middleware.TokenFromContext(c)
	if err := op(c, token, req.Email, req.Password); err != nil {
		respondServiceError(c, err, "Registration failed")
		return
	}

	c.Status(http.StatusCreated)
}
