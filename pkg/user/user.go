package user

// Role identifies the access level of a user. The numeric values are the
// ones persisted by the user store.
type Role int32

const (
	RoleAdmin  Role = 0
	RoleUser   Role = 1
	RoleDriver Role = 2
)

// String returns the canonical name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleUser:
		return "USER"
	case RoleDriver:
		return "DRIVER"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleDriver:
		return true
	default:
		return false
	}
}

// User represents a user record. Authorization only needs ID and Role;
// Login and Password are kept for parity with the backing user store and
// are never exposed through the API.
type User struct {
	ID       int64
	Role     Role
	Login    string
	Password []byte
}
