package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin can manage every user account.
	RoleAdmin Role = "ADMIN"
	// RoleUser indicates a regular user role.
	RoleUser Role = "USER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
