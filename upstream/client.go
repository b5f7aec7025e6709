// upstream/client.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/evgrid/console/session"
)

const fallbackMessage = "Request failed"

// Error is the single failure shape every caller depends on. The message
// is resolved in priority order: server "message" field, server "error"
// field, transport error text, generic fallback. Status is zero for
// transport failures that never produced a response.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// NotFound reports whether the upstream answered 404. Fallback-probe
// sequences treat this as "try the next candidate".
func (e *Error) NotFound() bool { return e.Status == http.StatusNotFound }

// AsError unwraps err into the normalized upstream shape. Anything that
// is not already an *Error is wrapped with the fallback message.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if ue, ok := err.(*Error); ok {
		return ue
	}
	return &Error{Message: err.Error()}
}

// Client talks to the EV charging REST backend. The bearer credential is
// supplied by an injected TokenSource rather than ambient storage; use
// WithTokens to derive a per-request client around a caller's own token.
// The client holds no cache: every call hits the backend.
type Client struct {
	http   *resty.Client
	tokens session.TokenSource
}

func New(baseURL string, timeout time.Duration, tokens session.TokenSource) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &Client{http: rc, tokens: tokens}
}

// WithTokens returns a client sharing the same transport but drawing the
// bearer from a different source.
func (c *Client) WithTokens(tokens session.TokenSource) *Client {
	return &Client{http: c.http, tokens: tokens}
}

// Resource accessors.
func (c *Client) Auth() AuthAPI         { return AuthAPI{c} }
func (c *Client) Owners() OwnersAPI     { return OwnersAPI{c} }
func (c *Client) Stations() StationsAPI { return StationsAPI{c} }
func (c *Client) Bookings() BookingsAPI { return BookingsAPI{c} }
func (c *Client) Staff() StaffAPI       { return StaffAPI{c} }
func (c *Client) Profile() ProfileAPI   { return ProfileAPI{c} }

// do performs one request and normalizes every failure into *Error.
// A non-nil out receives the decoded JSON body on success.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	raw, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Message: "Malformed response body"}
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if c.tokens != nil {
		if t := c.tokens.Token(); t != "" {
			req.SetHeader("Authorization", "Bearer "+t)
		}
	}
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackMessage
		}
		return nil, &Error{Message: msg}
	}
	if resp.IsError() {
		return nil, normalizeError(resp)
	}
	return resp.Body(), nil
}

func normalizeError(resp *resty.Response) *Error {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
		Title   string `json:"title"`
	}
	_ = json.Unmarshal(resp.Body(), &payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Err
	}
	if msg == "" {
		msg = payload.Title
	}
	if msg == "" {
		msg = fallbackMessage
	}
	return &Error{Status: resp.StatusCode(), Message: msg}
}
