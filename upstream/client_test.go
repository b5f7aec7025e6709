// upstream/client_test.go
package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evgrid/console/session"
	"github.com/evgrid/console/upstream"
)

func newClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, 5*time.Second, nil)
}

func TestListNormalization(t *testing.T) {
	t.Run("BareArray", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"nic":"1"},{"nic":"2"},{"nic":"3"}]`))
		})

		page, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("Envelope", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"nic":"1"},{"nic":"2"}],"total":10}`))
		})

		page, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 10, page.Total)
	})

	t.Run("EnvelopeWithoutTotal", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"nic":"1"}]}`))
		})

		page, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		page, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
	})
}

func TestErrorNormalization(t *testing.T) {
	errorBody := func(body string, status int) *upstream.Client {
		return newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(body))
		})
	}

	t.Run("MessageFieldWins", func(t *testing.T) {
		c := errorBody(`{"message":"NIC already exists","error":"conflict","title":"Conflict"}`, http.StatusConflict)
		_, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		ue := upstream.AsError(err)
		assert.Equal(t, "NIC already exists", ue.Message)
		assert.Equal(t, http.StatusConflict, ue.Status)
	})

	t.Run("ErrorFieldSecond", func(t *testing.T) {
		c := errorBody(`{"error":"bad input","title":"Bad Request"}`, http.StatusBadRequest)
		_, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.Equal(t, "bad input", upstream.AsError(err).Message)
	})

	t.Run("TitleFieldThird", func(t *testing.T) {
		c := errorBody(`{"title":"One or more validation errors occurred."}`, http.StatusBadRequest)
		_, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.Equal(t, "One or more validation errors occurred.", upstream.AsError(err).Message)
	})

	t.Run("FallbackMessage", func(t *testing.T) {
		c := errorBody(`<html>gateway error</html>`, http.StatusBadGateway)
		_, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		assert.Equal(t, "Request failed", upstream.AsError(err).Message)
	})

	t.Run("TransportFailureHasNoStatus", func(t *testing.T) {
		c := upstream.New("http://127.0.0.1:1", time.Second, nil)
		_, err := c.Owners().List(context.Background(), upstream.OwnerFilter{})
		ue := upstream.AsError(err)
		assert.Equal(t, 0, ue.Status)
		assert.NotEmpty(t, ue.Message)
	})
}

func TestBearerForwarding(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	base := upstream.New(srv.URL, 5*time.Second, nil)

	_, err := base.Owners().List(context.Background(), upstream.OwnerFilter{})
	assert.NoError(t, err)
	assert.Empty(t, gotAuth, "no token source, no header")

	c := base.WithTokens(session.Static("tok-123"))
	_, err = c.Owners().List(context.Background(), upstream.OwnerFilter{})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestListParams(t *testing.T) {
	var got string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	_, err := c.Owners().List(context.Background(), upstream.OwnerFilter{Query: "perera", Page: 2, PageSize: 25})
	assert.NoError(t, err)
	assert.Contains(t, got, "q=perera")
	assert.Contains(t, got, "page=2")
	assert.Contains(t, got, "pageSize=25")
}
