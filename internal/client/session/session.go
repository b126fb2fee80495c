// Package session owns the authenticated-identity lifecycle: restoring
// persisted credentials at startup, login, logout, forced invalidation, and
// the role-derived capability checks consumed by view gating.
package session

import "github.com/aahadaazar/patients-app/internal/client/models"

// Session is the client-held record of the current authenticated actor.
// The zero value plus Loading=true is the state at process start.
type Session struct {
	Token   string
	User    *models.User
	Loading bool
}

// IsAuthenticated reports whether both a token and a user are held.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsAdmin reports whether the actor holds the ADMIN role.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == models.RoleAdmin
}

// IsEmployee reports whether the actor holds EMPLOYEE capability.
// ADMIN implies EMPLOYEE.
func (s Session) IsEmployee() bool {
	return s.User != nil && s.User.Role.Satisfies(models.RoleEmployee)
}
