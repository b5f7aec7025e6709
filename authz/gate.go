// authz/gate.go
package authz

// Decision is the outcome of evaluating a gate for a session.
type Decision int

const (
	// Allow renders the requested node.
	Allow Decision = iota
	// Loading means the caller is authenticated but the role claim has
	// not resolved yet. Callers must show a neutral placeholder, never a
	// redirect, so an async claim resolution cannot race into a bounce.
	Loading
	// RedirectLogin sends an unauthenticated caller to sign-in, keeping
	// the originally requested location for the post-login return.
	RedirectLogin
	// RedirectUnauthorized sends a resolved-but-disallowed role to the
	// fixed unauthorized page, not to sign-in.
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	}
	return "unknown"
}

// CanEnter is plain set membership. An unresolved role never enters.
func CanEnter(role string, allowed []string) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// Decide evaluates one gate. An empty allow-list is an authentication-only
// gate. An unresolved role yields Loading, a resolved role outside the
// allow-list yields RedirectUnauthorized.
func Decide(authenticated bool, role string, allowed []string) Decision {
	if !authenticated {
		return RedirectLogin
	}
	if len(allowed) == 0 {
		return Allow
	}
	if role == "" {
		return Loading
	}
	if CanEnter(role, allowed) {
		return Allow
	}
	return RedirectUnauthorized
}
