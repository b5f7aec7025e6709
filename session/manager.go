// session/manager.go
package session

import (
	"sync"
	"time"
)

// TokenSource supplies the bearer token for outgoing upstream calls.
type TokenSource interface {
	Token() string
}

// Static is a fixed token, used when forwarding a caller's own bearer.
type Static string

func (s Static) Token() string { return string(s) }

// Manager owns a single signed-in session. It schedules a one-shot
// invalidation at exactly the token's expiry instant rather than polling,
// and re-arms whenever the token changes. Sign-out is idempotent.
type Manager struct {
	mu       sync.Mutex
	token    string
	claims   Claims
	timer    *time.Timer
	onExpire func()
}

// NewManager creates an empty session holder. onExpire may be nil; when
// set it fires once per expiry, after the session has been cleared.
func NewManager(onExpire func()) *Manager {
	return &Manager{onExpire: onExpire}
}

// SignIn stores the token and arms the expiry timer. A token that is
// already expired is rejected and the session stays empty.
func (m *Manager) SignIn(token string) Claims {
	claims := Decode(token)

	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if claims == nil || IsExpired(claims, time.Now()) {
		m.token = ""
		m.claims = nil
		m.mu.Unlock()
		return nil
	}
	m.token = token
	m.claims = claims
	if exp := ExpiresAt(claims); !exp.IsZero() {
		m.timer = time.AfterFunc(time.Until(exp), m.expire)
	}
	m.mu.Unlock()
	return claims
}

// SignOut clears the session. Safe to call any number of times.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.clearLocked()
	m.mu.Unlock()
}

func (m *Manager) expire() {
	m.mu.Lock()
	cleared := m.token != ""
	m.clearLocked()
	cb := m.onExpire
	m.mu.Unlock()

	if cleared && cb != nil {
		cb()
	}
}

func (m *Manager) clearLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.token = ""
	m.claims = nil
}

// Token implements TokenSource. Empty when signed out or expired.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Claims returns the decoded claims of the current session, or nil.
func (m *Manager) Claims() Claims {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.claims
}

// Role is derived from the live claims on every call, never cached
// independently of the token.
func (m *Manager) Role() string {
	return ExtractRole(m.Claims())
}
