// upstream/probe.go
package upstream

import (
	"context"
	"net/http"
)

// candidate is one endpoint of a fallback sequence. The backend's profile
// and password surface drifted across deployments, so the console probes
// an ordered list: 404 means "try the next one", any other failure aborts
// immediately, first success wins.
type candidate struct {
	method string
	path   string
}

func (c *Client) firstAvailable(ctx context.Context, candidates []candidate, body interface{}) error {
	var last *Error
	for _, cand := range candidates {
		err := c.do(ctx, cand.method, cand.path, nil, body, nil)
		if err == nil {
			return nil
		}
		ue := AsError(err)
		if ue.NotFound() {
			last = ue
			continue
		}
		return ue
	}
	if last != nil {
		return last
	}
	return &Error{Status: http.StatusNotFound, Message: "Endpoint not found"}
}

// tryGet performs a GET that distinguishes NotFound from real failure:
// (false, nil) on 404, (false, err) on anything else that failed.
func (c *Client) tryGet(ctx context.Context, path string, out interface{}) (bool, error) {
	err := c.do(ctx, http.MethodGet, path, nil, nil, out)
	if err == nil {
		return true, nil
	}
	if AsError(err).NotFound() {
		return false, nil
	}
	return false, err
}
