package auth

// Package auth contains domain-level types for the authenticated admin
// session. It is pure and free of transport/adapter concerns.

// Role represents an admin console authorization role.
// Keep string form so it round-trips API payloads unchanged.
type Role string

const (
	RoleSuperadmin   Role = "superadmin"
	RoleAdmin        Role = "admin"
	RoleEmployee     Role = "employee"
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
)

// Session is the authenticated identity the client holds while logged in.
// It exists only between a successful login (or bootstrap verification) and
// logout/invalidation. Token is opaque; the server is the sole authority on
// its meaning.
type Session struct {
	Token       string          `json:"token"`
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        Role            `json:"role"`
	Permissions map[string]bool `json:"permissions"`
}

// IsSuperadmin returns true if the session holds the superadmin role.
func (s Session) IsSuperadmin() bool { return s.Role == RoleSuperadmin }

// Can reports whether the session grants the given permission key.
// Superadmin bypasses the permission map entirely.
func (s Session) Can(key string) bool {
	if s.Role == RoleSuperadmin {
		return true
	}
	return s.Permissions[key]
}

// QualifiesForLiveUpdates reports whether this session's role may hold an
// open push channel. Non-privileged roles never connect.
func (s Session) QualifiesForLiveUpdates() bool {
	return s.Role == RoleAdmin || s.Role == RoleSuperadmin
}
