package model

// Role is the closed set of user roles. The authorization policy switches
// exhaustively over these values; anything else is rejected at the boundary.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReviewer Role = "reviewer"
	RoleUser     Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReviewer, RoleUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool    { return r == RoleAdmin }
func (r Role) IsReviewer() bool { return r == RoleReviewer }
func (r Role) IsUser() bool     { return r == RoleUser }
