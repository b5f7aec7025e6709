// upstream/users.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/spf13/cast"

	"github.com/evgrid/console/model"
)

const staffBase = "/admin/staff"

type StaffAPI struct {
	c *Client
}

type StaffFilter struct {
	Query    string
	Role     string // "" or "All" means no filter
	Page     int
	PageSize int
}

func (f StaffFilter) values() url.Values {
	v := listParams(f.Query, f.Page, f.PageSize)
	if f.Role != "" && f.Role != "All" {
		v.Set("role", f.Role)
	}
	return v
}

func (a StaffAPI) List(ctx context.Context, f StaffFilter) (Page, error) {
	raw, err := a.c.doRaw(ctx, http.MethodGet, staffBase, f.values(), nil)
	if err != nil {
		return Page{}, err
	}
	return decodePage(raw)
}

func (a StaffAPI) Create(ctx context.Context, payload model.StaffCreate) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, staffBase, nil, payload, &out)
	return out, err
}

func (a StaffAPI) Update(ctx context.Context, id string, payload model.StaffUpdate) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPatch, staffBase+"/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (a StaffAPI) Activate(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodPost, staffBase+"/"+url.PathEscape(id)+"/activate", nil, nil, nil)
}

type staffReasonRequest struct {
	Reason string `json:"reason"`
}

func (a StaffAPI) Deactivate(ctx context.Context, id, reason string) error {
	body := staffReasonRequest{Reason: reason}
	return a.c.do(ctx, http.MethodPost, staffBase+"/"+url.PathEscape(id)+"/deactivate", nil, body, nil)
}

// FindByEmail is a one-row search, used after register to resolve the new
// account's id.
func (a StaffAPI) FindByEmail(ctx context.Context, email string) (json.RawMessage, error) {
	page, err := a.List(ctx, StaffFilter{Query: email, Page: 1, PageSize: 1})
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, nil
	}
	return page.Items[0], nil
}

type ProfileAPI struct {
	c *Client
}

// GetMyProfile tolerates three endpoint generations, probing alternates on
// 404 and never failing on a missing endpoint alone. When the first body
// that resolves lacks the expected sub-fields it retries the richest
// endpoint once to re-hydrate. An empty map means nothing resolved.
func (a ProfileAPI) GetMyProfile(ctx context.Context) (map[string]interface{}, error) {
	paths := []string{"/users/me/profile", "/me/profile", "/users/me"}

	var data map[string]interface{}
	for _, p := range paths {
		var out map[string]interface{}
		found, err := a.c.tryGet(ctx, p, &out)
		if err != nil {
			return nil, err
		}
		if found {
			data = out
			break
		}
	}
	if data == nil {
		return map[string]interface{}{}, nil
	}

	if needsRehydration(data) {
		var richer map[string]interface{}
		found, err := a.c.tryGet(ctx, "/users/me/profile", &richer)
		if err != nil {
			return nil, err
		}
		if found {
			data = richer
		}
	}
	return data, nil
}

func needsRehydration(data map[string]interface{}) bool {
	profile, hasProfile := data["profile"].(map[string]interface{})
	if hasProfile {
		return false
	}
	profile = data
	hasName := cast.ToString(profile["fullName"]) != ""
	hasPhone := cast.ToString(profile["phone"]) != ""
	return !hasName || !hasPhone
}

// UpdateMyProfile walks the same endpoint generations as GetMyProfile.
func (a ProfileAPI) UpdateMyProfile(ctx context.Context, payload model.ProfileUpdate) error {
	return a.c.firstAvailable(ctx, []candidate{
		{http.MethodPut, "/users/me/profile"},
		{http.MethodPut, "/me/profile"},
		{http.MethodPatch, "/users/me/profile"},
	}, payload)
}

type passwordOnlyRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangeMyPassword prefers the combined profile endpoint (full name and
// phone ride along so they are not wiped), then falls back through the
// dedicated password endpoints. Only 404 moves to the next candidate; a
// real error aborts the sequence.
func (a ProfileAPI) ChangeMyPassword(ctx context.Context, payload model.PasswordChange) error {
	err := a.c.do(ctx, http.MethodPut, "/users/me/profile", nil, payload, nil)
	if err == nil {
		return nil
	}
	if !AsError(err).NotFound() {
		return err
	}

	pwOnly := passwordOnlyRequest{
		Email:           payload.Email,
		CurrentPassword: payload.CurrentPassword,
		NewPassword:     payload.NewPassword,
	}
	return a.c.firstAvailable(ctx, []candidate{
		{http.MethodPut, "/users/me/password"},
		{http.MethodPut, "/auth/me/password"},
		{http.MethodPut, "/me/password"},
		{http.MethodPost, "/auth/change-password"},
	}, pwOnly)
}
