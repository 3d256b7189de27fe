package guard

import (
	"context"

	"github.com/storeratings/authkit/core/authctl"
	"github.com/storeratings/authkit/core/session"
)

// Controller is the slice of the session controller guards consume:
// published state plus the silent freshness check. *authctl.Controller
// satisfies it.
type Controller interface {
	Current(ctx context.Context) authctl.State
	ValidateToken(ctx context.Context, silent bool) bool
}

// Protected gates a destination behind authentication and, optionally, a
// role allow-list. While the controller is loading it stalls; it never
// defaults to anonymous or authenticated.
type Protected struct {
	ctl          Controller
	paths        Paths
	allowedRoles []session.Role
	requireAuth  bool
}

// ProtectedOption configures a Protected guard.
type ProtectedOption func(*Protected)

// WithAllowedRoles restricts the destination to the given roles.
// Any authenticated role is allowed when empty.
func WithAllowedRoles(roles ...session.Role) ProtectedOption {
	return func(g *Protected) {
		g.allowedRoles = roles
	}
}

// WithRequireAuth toggles the authentication requirement (default: true).
// Role restrictions still apply when disabled.
func WithRequireAuth(require bool) ProtectedOption {
	return func(g *Protected) {
		g.requireAuth = require
	}
}

// WithPaths overrides the navigation surface (default: DefaultPaths).
func WithPaths(paths Paths) ProtectedOption {
	return func(g *Protected) {
		g.paths = paths
	}
}

// NewProtected creates a guard for authenticated destinations.
func NewProtected(ctl Controller, opts ...ProtectedOption) *Protected {
	g := &Protected{
		ctl:         ctl,
		paths:       DefaultPaths(),
		requireAuth: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate decides what to do for a navigation to the location at.
//
// Order: loading stalls; missing authentication redirects to login with
// the attempted location carried along; a role outside the allow-list
// redirects to the public home; otherwise the destination renders. On any
// navigation while already authenticated a silent revalidation is kicked
// off in the background as a freshness check; its failure does not end
// the session.
func (g *Protected) Evaluate(ctx context.Context, at string) Decision {
	state := g.ctl.Current(ctx)

	if state.Loading {
		return pending()
	}

	if g.requireAuth && !state.Authenticated {
		return redirectBack(g.paths.Login, at)
	}

	if len(g.allowedRoles) > 0 && state.User != nil && !state.User.Role.In(g.allowedRoles...) {
		return redirect(g.paths.Home)
	}

	if state.Authenticated {
		go g.ctl.ValidateToken(context.WithoutCancel(ctx), true)
	}

	return render()
}

// Guest gates destinations meant for anonymous visitors (login, signup):
// an authenticated session is redirected to its role's fixed landing
// location instead of seeing them.
type Guest struct {
	ctl   Controller
	paths Paths
}

// GuestOption configures a Guest guard.
type GuestOption func(*Guest)

// WithGuestPaths overrides the navigation surface (default: DefaultPaths).
func WithGuestPaths(paths Paths) GuestOption {
	return func(g *Guest) {
		g.paths = paths
	}
}

// NewGuest creates a guard for anonymous-only destinations.
func NewGuest(ctl Controller, opts ...GuestOption) *Guest {
	g := &Guest{
		ctl:   ctl,
		paths: DefaultPaths(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate decides what to do for a navigation to a guest destination.
func (g *Guest) Evaluate(ctx context.Context, at string) Decision {
	state := g.ctl.Current(ctx)

	if state.Loading {
		return pending()
	}

	if state.Authenticated && state.User != nil {
		if landing := g.paths.Landing(state.User.Role); landing != "" {
			return redirect(landing)
		}
	}

	return render()
}
