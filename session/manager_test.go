// session/manager_test.go
package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/evgrid/console/session"
)

func TestManagerSignIn(t *testing.T) {
	t.Run("StoresLiveToken", func(t *testing.T) {
		m := session.NewManager(nil)
		token := signToken(t, jwt.MapClaims{
			"sub":  "admin@evgrid.lk",
			"role": "Backoffice",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		claims := m.SignIn(token)
		assert.NotNil(t, claims)
		assert.Equal(t, token, m.Token())
		assert.Equal(t, "Backoffice", m.Role())
	})

	t.Run("RejectsExpiredToken", func(t *testing.T) {
		m := session.NewManager(nil)
		token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})

		assert.Nil(t, m.SignIn(token))
		assert.Equal(t, "", m.Token())
	})

	t.Run("RejectsMalformedToken", func(t *testing.T) {
		m := session.NewManager(nil)
		assert.Nil(t, m.SignIn("garbage"))
		assert.Equal(t, "", m.Token())
	})
}

func TestManagerExpiry(t *testing.T) {
	expired := make(chan struct{})
	m := session.NewManager(func() { close(expired) })

	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Second).Unix()})
	assert.NotNil(t, m.SignIn(token))
	assert.NotEmpty(t, m.Token())

	select {
	case <-expired:
	case <-time.After(3 * time.Second):
		t.Fatal("expiry callback never fired")
	}
	assert.Equal(t, "", m.Token())
	assert.Nil(t, m.Claims())
}

func TestManagerSignOut(t *testing.T) {
	m := session.NewManager(func() {
		t.Error("onExpire must not fire after an explicit sign-out")
	})

	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.NotNil(t, m.SignIn(token))

	m.SignOut()
	assert.Equal(t, "", m.Token())

	// Idempotent.
	m.SignOut()
	assert.Equal(t, "", m.Token())
}

func TestStaticTokenSource(t *testing.T) {
	var src session.TokenSource = session.Static("abc")
	assert.Equal(t, "abc", src.Token())
}
