// Package models defines the domain types held by the patients client.
// All records are transient copies; the backend owns the data.
package models

// Role is the backend-assigned role of an authenticated user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Satisfies reports whether a user holding role r passes a check for
// required. ADMIN always satisfies an EMPLOYEE requirement.
func (r Role) Satisfies(required Role) bool {
	if r == required {
		return true
	}
	return required == RoleEmployee && r == RoleAdmin
}

// User identifies the authenticated actor as claimed by the backend at login.
type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
