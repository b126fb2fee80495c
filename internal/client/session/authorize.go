package session

import "github.com/aahadaazar/patients-app/internal/client/models"

// Decision is the outcome of a local authorization check for a protected
// view. The check is pure local-state evaluation; it trusts the client-held
// role claim and is a UX control, not a security boundary.
type Decision int

const (
	// Pending: restoration has not finished; the caller must hold
	// rendering and must not redirect.
	Pending Decision = iota
	// Allow: render the protected view.
	Allow
	// Redirect: no session, send the caller to the login entry point.
	Redirect
	// Deny: authenticated but under-privileged, render an access-denied
	// state with a way back.
	Deny
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Authorize evaluates access to a view that requires any of the given roles.
// An empty required set only demands authentication. ADMIN satisfies an
// EMPLOYEE requirement through the role hierarchy.
func Authorize(s Session, required ...models.Role) Decision {
	if s.Loading {
		return Pending
	}
	if !s.IsAuthenticated() {
		return Redirect
	}
	if len(required) == 0 {
		return Allow
	}
	for _, r := range required {
		if s.User.Role.Satisfies(r) {
			return Allow
		}
	}
	return Deny
}
