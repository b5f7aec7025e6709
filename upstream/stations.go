// upstream/stations.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/evgrid/console/model"
)

type StationsAPI struct {
	c *Client
}

type StationFilter struct {
	Query    string
	IsActive *bool
	Page     int
	PageSize int
}

func (f StationFilter) values() url.Values {
	v := listParams(f.Query, f.Page, f.PageSize)
	if f.IsActive != nil {
		v.Set("isActive", strconv.FormatBool(*f.IsActive))
	}
	return v
}

func (a StationsAPI) List(ctx context.Context, f StationFilter) (Page, error) {
	raw, err := a.c.doRaw(ctx, http.MethodGet, "/stations", f.values(), nil)
	if err != nil {
		return Page{}, err
	}
	return decodePage(raw)
}

func (a StationsAPI) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodGet, "/stations/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (a StationsAPI) Create(ctx context.Context, payload model.Station) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, "/stations", nil, payload, &out)
	return out, err
}

func (a StationsAPI) Update(ctx context.Context, id string, payload model.Station) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPut, "/stations/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

// Activate tolerates a 204 No Content answer.
func (a StationsAPI) Activate(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodPatch, "/stations/"+url.PathEscape(id)+"/activate", nil, nil, nil)
}

func (a StationsAPI) Deactivate(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodPatch, "/stations/"+url.PathEscape(id)+"/deactivate", nil, nil, nil)
}

// UpdateSchedule replaces the day-by-day availability. The backend answers
// 409 when a day exceeds the station's total slots; the console clamps
// optimistically before calling but the server remains authoritative.
func (a StationsAPI) UpdateSchedule(ctx context.Context, id string, payload model.SchedulePayload) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPut, "/stations/"+url.PathEscape(id)+"/schedule", nil, payload, &out)
	return out, err
}
