// service/auth_service.go
package service

import (
	"context"
	"time"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/session"
	"github.com/evgrid/console/upstream"
)

// LoginResult is the console's sign-in answer: the upstream token plus
// everything derived from it, so the caller never decodes the token
// itself.
type LoginResult struct {
	Token     string     `json:"token"`
	Role      string     `json:"role,omitempty"`
	Username  string     `json:"username,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// IAuthService defines the interface for sign-in operations
type IAuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	RegisterBackoffice(ctx context.Context, token, email, password string) error
	RegisterOperator(ctx context.Context, token, email, password string) error
}

type AuthService struct {
	up *upstream.Client
}

var _ IAuthService = &AuthService{}

func NewAuthService(up *upstream.Client) *AuthService {
	return &AuthService{up: up}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := s.up.Auth().Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, console_errors.ErrInvalidCredentials
	}

	claims := session.Decode(resp.Token)
	result := &LoginResult{
		Token:    resp.Token,
		Role:     session.ExtractRole(claims),
		Username: session.Subject(claims),
	}
	// Role is derived from the token; the response field is only a hint
	// for backends that do not embed the claim.
	if result.Role == "" {
		result.Role = resp.Role
	}
	if exp := session.ExpiresAt(claims); !exp.IsZero() {
		result.ExpiresAt = &exp
	}
	return result, nil
}

func (s *AuthService) RegisterBackoffice(ctx context.Context, token, email, password string) error {
	return forToken(s.up, token).Auth().RegisterBackoffice(ctx, email, password)
}

func (s *AuthService) RegisterOperator(ctx context.Context, token, email, password string) error {
	return forToken(s.up, token).Auth().RegisterOperator(ctx, email, password)
}

// forToken derives a gateway client around a caller's own bearer. The
// session source is injected per call, never read from ambient state.
func forToken(up *upstream.Client, token string) *upstream.Client {
	return up.WithTokens(session.Static(token))
}

// bulkPageSize mimics the console pages that fetch "effectively all" rows
// and aggregate client-side.
const bulkPageSize = 1000
