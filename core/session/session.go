package session

// Role is one of the closed set of authorization levels the backend assigns
// to a user. All route access and landing decisions derive from it.
type Role string

const (
	// RoleAdmin is the platform-wide administrator role.
	RoleAdmin Role = "System Administrator"
	// RoleStoreOwner owns one or more stores and sees owner dashboards.
	RoleStoreOwner Role = "Store Owner"
	// RoleNormalUser is a regular rating user.
	RoleNormalUser Role = "Normal User"
)

// Valid reports whether the role belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStoreOwner, RoleNormalUser:
		return true
	}
	return false
}

// In reports whether the role is one of the given roles.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// User is the backend's user record as carried on the wire.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Role    Role   `json:"role"`
}

// Session is the (token, user) pair identifying the current actor.
// The token is opaque: it is produced by the backend and never interpreted
// by the client. An absent token or user means the session is anonymous.
type Session struct {
	Token string
	User  *User
}

// IsAuthenticated reports whether both halves of the credential are present.
// Token and user are always written together and cleared together.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session user holds the administrator role.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == RoleAdmin
}

// IsStoreOwner reports whether the session user holds the store owner role.
func (s Session) IsStoreOwner() bool {
	return s.User != nil && s.User.Role == RoleStoreOwner
}

// IsNormalUser reports whether the session user holds the normal user role.
func (s Session) IsNormalUser() bool {
	return s.User != nil && s.User.Role == RoleNormalUser
}
