// upstream/owners.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/evgrid/console/model"
)

type OwnersAPI struct {
	c *Client
}

type OwnerFilter struct {
	Query    string
	IsActive *bool
	Page     int
	PageSize int
}

func (f OwnerFilter) values() url.Values {
	v := listParams(f.Query, f.Page, f.PageSize)
	if f.IsActive != nil {
		v.Set("isActive", strconv.FormatBool(*f.IsActive))
	}
	return v
}

func (a OwnersAPI) List(ctx context.Context, f OwnerFilter) (Page, error) {
	raw, err := a.c.doRaw(ctx, http.MethodGet, "/admin/owners", f.values(), nil)
	if err != nil {
		return Page{}, err
	}
	return decodePage(raw)
}

func (a OwnersAPI) Get(ctx context.Context, nic string) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodGet, "/admin/owners/"+url.PathEscape(nic), nil, nil, &out)
	return out, err
}

func (a OwnersAPI) Create(ctx context.Context, payload model.OwnerCreate) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, "/admin/owners", nil, payload, &out)
	return out, err
}

func (a OwnersAPI) Update(ctx context.Context, nic string, payload model.OwnerUpdate) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPut, "/admin/owners/"+url.PathEscape(nic), nil, payload, &out)
	return out, err
}

type ownerStatusRequest struct {
	IsActive bool   `json:"isActive"`
	Reason   string `json:"reason"`
}

func (a OwnersAPI) SetStatus(ctx context.Context, nic string, isActive bool, reason string) error {
	body := ownerStatusRequest{IsActive: isActive, Reason: reason}
	return a.c.do(ctx, http.MethodPatch, "/admin/owners/"+url.PathEscape(nic)+"/status", nil, body, nil)
}

func listParams(query string, page, pageSize int) url.Values {
	v := url.Values{}
	v.Set("q", query)
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("pageSize", strconv.Itoa(pageSize))
	return v
}
