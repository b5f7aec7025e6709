// upstream/users_test.go
package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evgrid/console/model"
	"github.com/evgrid/console/upstream"
)

// routeServer answers each configured path and 404s everything else,
// keeping a per-path hit count.
type routeServer struct {
	t      *testing.T
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	hits   map[string]int
}

func newRouteServer(t *testing.T) (*routeServer, *upstream.Client) {
	rs := &routeServer{
		t:      t,
		routes: map[string]func(http.ResponseWriter, *http.Request){},
		hits:   map[string]int{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		rs.hits[key]++
		if h, ok := rs.routes[key]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Endpoint not found"}`))
	}))
	t.Cleanup(srv.Close)
	return rs, upstream.New(srv.URL, 5*time.Second, nil)
}

func (rs *routeServer) jsonRoute(key string, body string) {
	rs.routes[key] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestGetMyProfile(t *testing.T) {
	t.Run("FirstEndpointComplete", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.jsonRoute("GET /users/me/profile", `{"profile":{"email":"a@b.lk","fullName":"A B","phone":"0771234567"}}`)

		data, err := c.Profile().GetMyProfile(context.Background())
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, 1, rs.hits["GET /users/me/profile"])
	})

	t.Run("FallsBackThroughGenerations", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.jsonRoute("GET /users/me", `{"email":"a@b.lk","fullName":"A B","phone":"0771234567"}`)

		data, err := c.Profile().GetMyProfile(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "a@b.lk", data["email"])
		assert.Equal(t, 1, rs.hits["GET /users/me/profile"])
		assert.Equal(t, 1, rs.hits["GET /me/profile"])
		assert.Equal(t, 1, rs.hits["GET /users/me"])
	})

	t.Run("RehydratesThinPayload", func(t *testing.T) {
		rs, c := newRouteServer(t)
		// The middle endpoint answers, but without name and phone. The
		// richest endpoint is retried once even though it 404ed earlier.
		rs.jsonRoute("GET /me/profile", `{"email":"a@b.lk"}`)

		data, err := c.Profile().GetMyProfile(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "a@b.lk", data["email"])
		assert.Equal(t, 2, rs.hits["GET /users/me/profile"])
	})

	t.Run("AllMissingYieldsEmptyMap", func(t *testing.T) {
		_, c := newRouteServer(t)

		data, err := c.Profile().GetMyProfile(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("RealErrorAborts", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.routes["GET /users/me/profile"] = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
		}

		_, err := c.Profile().GetMyProfile(context.Background())
		assert.Error(t, err)
		assert.Equal(t, "boom", upstream.AsError(err).Message)
		assert.Zero(t, rs.hits["GET /me/profile"])
	})
}

func TestChangeMyPassword(t *testing.T) {
	payload := model.PasswordChange{
		Email:           "a@b.lk",
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
		FullName:        "A B",
		Phone:           "0771234567",
	}

	t.Run("CombinedEndpointPreferred", func(t *testing.T) {
		rs, c := newRouteServer(t)
		var body map[string]interface{}
		rs.routes["PUT /users/me/profile"] = func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			w.WriteHeader(http.StatusOK)
		}

		assert.NoError(t, c.Profile().ChangeMyPassword(context.Background(), payload))
		// Name and phone ride along so the combined write does not blank them.
		assert.Equal(t, "A B", body["fullName"])
		assert.Equal(t, "0771234567", body["phone"])
		assert.Zero(t, rs.hits["PUT /users/me/password"])
	})

	t.Run("FallsBackToPasswordEndpoints", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.jsonRoute("PUT /auth/me/password", `{}`)

		assert.NoError(t, c.Profile().ChangeMyPassword(context.Background(), payload))
		assert.Equal(t, 1, rs.hits["PUT /users/me/profile"])
		assert.Equal(t, 1, rs.hits["PUT /users/me/password"])
		assert.Equal(t, 1, rs.hits["PUT /auth/me/password"])
		assert.Zero(t, rs.hits["PUT /me/password"])
	})

	t.Run("NonNotFoundAbortsSequence", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.routes["PUT /users/me/profile"] = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Current password is incorrect"}`))
		}

		err := c.Profile().ChangeMyPassword(context.Background(), payload)
		assert.Error(t, err)
		assert.Equal(t, "Current password is incorrect", upstream.AsError(err).Message)
		assert.Zero(t, rs.hits["PUT /users/me/password"])
	})

	t.Run("AllMissingReportsNotFound", func(t *testing.T) {
		_, c := newRouteServer(t)

		err := c.Profile().ChangeMyPassword(context.Background(), payload)
		assert.Error(t, err)
		assert.True(t, upstream.AsError(err).NotFound())
	})
}

func TestFindByEmail(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.jsonRoute("GET /admin/staff", `[{"id":"u1","email":"op@b.lk"}]`)

		raw, err := c.Staff().FindByEmail(context.Background(), "op@b.lk")
		assert.NoError(t, err)
		assert.NotNil(t, raw)
	})

	t.Run("Missing", func(t *testing.T) {
		rs, c := newRouteServer(t)
		rs.jsonRoute("GET /admin/staff", `[]`)

		raw, err := c.Staff().FindByEmail(context.Background(), "nobody@b.lk")
		assert.NoError(t, err)
		assert.Nil(t, raw)
	})
}
