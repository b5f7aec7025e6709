// upstream/bookings.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/evgrid/console/model"
)

type BookingsAPI struct {
	c *Client
}

type BookingFilter struct {
	Query     string
	Status    string // "" or "All" means no filter
	StationID string
	From      time.Time
	To        time.Time
	Page      int
	PageSize  int
}

func (f BookingFilter) values() url.Values {
	v := listParams(f.Query, f.Page, f.PageSize)
	if f.StationID != "" {
		v.Set("stationId", f.StationID)
	}
	if f.Status != "" && f.Status != "All" {
		v.Set("status", f.Status)
	}
	if !f.From.IsZero() {
		v.Set("from", f.From.UTC().Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		v.Set("to", f.To.UTC().Format(time.RFC3339))
	}
	return v
}

func (a BookingsAPI) List(ctx context.Context, f BookingFilter) (Page, error) {
	raw, err := a.c.doRaw(ctx, http.MethodGet, "/bookings", f.values(), nil)
	if err != nil {
		return Page{}, err
	}
	return decodePage(raw)
}

func (a BookingsAPI) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (a BookingsAPI) Create(ctx context.Context, payload model.BookingPayload) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, "/bookings", nil, payload, &out)
	return out, err
}

func (a BookingsAPI) Update(ctx context.Context, id string, payload model.BookingPayload) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (a BookingsAPI) Cancel(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil, nil)
}

func (a BookingsAPI) Approve(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/approve", nil, nil, &out)
	return out, err
}

func (a BookingsAPI) Finalize(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/finalize", nil, nil, &out)
	return out, err
}

type scanRequest struct {
	Code string `json:"code"`
}

// Scan validates a QR payload. Some deployments answer {valid, booking},
// others the bare booking; callers unwrap via viewmodel.ScannedBooking.
func (a BookingsAPI) Scan(ctx context.Context, code string) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, http.MethodPost, "/bookings/scan", nil, scanRequest{Code: code}, &out)
	return out, err
}
