// upstream/auth.go
package upstream

import (
	"context"
	"net/http"

	"github.com/evgrid/console/model"
)

type AuthAPI struct {
	c *Client
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
}

func (a AuthAPI) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Username: username, Password: password}, &out)
	return out, err
}

type registerRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (a AuthAPI) RegisterBackoffice(ctx context.Context, email, password string) error {
	body := registerRequest{Email: email, Password: password, Role: model.RoleBackoffice}
	return a.c.do(ctx, http.MethodPost, "/auth/register/backoffice", nil, body, nil)
}

// RegisterOperator requires a Backoffice bearer on the client.
func (a AuthAPI) RegisterOperator(ctx context.Context, email, password string) error {
	body := registerRequest{Email: email, Password: password, Role: model.RoleOperator}
	return a.c.do(ctx, http.MethodPost, "/auth/register/operator", nil, body, nil)
}
