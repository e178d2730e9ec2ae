// Package session carries the acting user's identity as issued by the
// external identity provider. Both claims are opaque strings here; the core
// passes them through for ownership scoping and never verifies them.
// Identity is always an explicit argument, never ambient state.
package session

// User identifies the acting user for every repository and reconciler call.
type User struct {
	ID   string
	Role string
}

// RoleAdmin is the role claim that grants catalog write access.
const RoleAdmin = "admin"

// IsAdmin reports whether the role claim grants catalog write access.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
