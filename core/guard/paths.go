package guard

import "github.com/storeratings/authkit/core/session"

// Paths is the navigation surface guards decide against. These are
// configuration constants of the application, never computed.
type Paths struct {
	// Login is the anonymous entry location.
	Login string
	// Signup is the registration location.
	Signup string
	// Home is the public landing location.
	Home string
	// AdminDashboard is the administrator landing location.
	AdminDashboard string
	// OwnerDashboard is the store owner landing location.
	OwnerDashboard string
	// StoreList is the normal user landing location.
	StoreList string
}

// DefaultPaths returns the application's standard navigation surface.
func DefaultPaths() Paths {
	return Paths{
		Login:          "/login",
		Signup:         "/signup",
		Home:           "/",
		AdminDashboard: "/admin/dashboard",
		OwnerDashboard: "/owner/dashboard",
		StoreList:      "/stores",
	}
}

// Landing returns the fixed landing location for a role, or empty for a
// role outside the closed set.
func (p Paths) Landing(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return p.AdminDashboard
	case session.RoleStoreOwner:
		return p.OwnerDashboard
	case session.RoleNormalUser:
		return p.StoreList
	}
	return ""
}
