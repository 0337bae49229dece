package auth

// Package auth contains domain-level types for authentication and the
// client-side session. It is pure and free of transport/adapter concerns.

// Role represents an application's authorization role.
// Keep string form for easy persistence and comparison with token claims.
// Valid values are defined as constants below.
type Role string

const (
	RolePlayer Role = "PLAYER"
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
)

// RecognizedRoles returns the closed set of roles the client understands.
// Claims outside this set are dropped during extraction.
func RecognizedRoles() []Role {
	return []Role{RolePlayer, RoleOwner, RoleAdmin}
}

// Valid reports whether r is a member of the recognized role set.
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// AuthUserInfo is the authenticated identity derived from a decoded bearer
// token payload. Roles preserves claim-array order; the first entry is
// treated as the primary role for dashboard routing.
type AuthUserInfo struct {
	Subject string
	Email   string
	Roles   []Role
}

// PrimaryRole returns the first role in claim order, or ok=false when the
// identity holds no recognized roles.
func (i AuthUserInfo) PrimaryRole() (Role, bool) {
	if len(i.Roles) == 0 {
		return "", false
	}
	return i.Roles[0], true
}

// HasRole reports membership of role in the identity's role list.
func (i AuthUserInfo) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}
