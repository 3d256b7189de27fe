package guard_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeratings/authkit/core/authctl"
	"github.com/storeratings/authkit/core/guard"
	"github.com/storeratings/authkit/core/session"
)

type stubController struct {
	state       authctl.State
	validations atomic.Int32
	lastSilent  atomic.Bool
}

func (s *stubController) Current(ctx context.Context) authctl.State {
	return s.state
}

func (s *stubController) ValidateToken(ctx context.Context, silent bool) bool {
	s.validations.Add(1)
	s.lastSilent.Store(silent)
	return true
}

func loadingController() *stubController {
	return &stubController{state: authctl.State{Loading: true}}
}

func anonymousController() *stubController {
	return &stubController{state: authctl.State{}}
}

func authenticatedController(role session.Role) *stubController {
	return &stubController{state: authctl.State{
		User:          &session.User{ID: 1, Name: "U", Email: "u@example.com", Role: role},
		Authenticated: true,
	}}
}

func TestProtected_Evaluate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stalls while loading", func(t *testing.T) {
		t.Parallel()

		g := guard.NewProtected(loadingController())
		d := g.Evaluate(ctx, "/stores")
		assert.True(t, d.Pending())
		assert.False(t, d.Render())
	})

	t.Run("redirects anonymous to login carrying the attempted location", func(t *testing.T) {
		t.Parallel()

		g := guard.NewProtected(anonymousController())
		d := g.Evaluate(ctx, "/my-ratings")
		require.True(t, d.Redirect())
		assert.Equal(t, "/login", d.To)
		assert.Equal(t, "/my-ratings", d.ReturnTo)
	})

	t.Run("redirects disallowed role to home", func(t *testing.T) {
		t.Parallel()

		ctl := authenticatedController(session.RoleNormalUser)
		g := guard.NewProtected(ctl, guard.WithAllowedRoles(session.RoleAdmin))

		d := g.Evaluate(ctx, "/admin/dashboard")
		require.True(t, d.Redirect())
		assert.Equal(t, "/", d.To)
		assert.Empty(t, d.ReturnTo)
	})

	t.Run("role restriction applies even without auth requirement", func(t *testing.T) {
		t.Parallel()

		ctl := authenticatedController(session.RoleStoreOwner)
		g := guard.NewProtected(ctl,
			guard.WithRequireAuth(false),
			guard.WithAllowedRoles(session.RoleNormalUser),
		)

		d := g.Evaluate(ctx, "/my-ratings")
		require.True(t, d.Redirect())
		assert.Equal(t, "/", d.To)
	})

	t.Run("renders allowed role and fires silent freshness check", func(t *testing.T) {
		t.Parallel()

		ctl := authenticatedController(session.RoleStoreOwner)
		g := guard.NewProtected(ctl, guard.WithAllowedRoles(session.RoleStoreOwner, session.RoleNormalUser))

		d := g.Evaluate(ctx, "/stores")
		assert.True(t, d.Render())

		require.Eventually(t, func() bool {
			return ctl.validations.Load() == 1
		}, time.Second, 5*time.Millisecond)
		assert.True(t, ctl.lastSilent.Load(), "navigation checks must be silent")
	})

	t.Run("renders without roles restriction", func(t *testing.T) {
		t.Parallel()

		g := guard.NewProtected(authenticatedController(session.RoleNormalUser))
		assert.True(t, g.Evaluate(ctx, "/profile").Render())
	})

	t.Run("anonymous renders when auth not required, no validation fired", func(t *testing.T) {
		t.Parallel()

		ctl := anonymousController()
		g := guard.NewProtected(ctl, guard.WithRequireAuth(false))

		d := g.Evaluate(ctx, "/about")
		assert.True(t, d.Render())

		time.Sleep(50 * time.Millisecond)
		assert.Zero(t, ctl.validations.Load())
	})

	t.Run("custom paths", func(t *testing.T) {
		t.Parallel()

		paths := guard.DefaultPaths()
		paths.Login = "/signin"
		g := guard.NewProtected(anonymousController(), guard.WithPaths(paths))

		d := g.Evaluate(ctx, "/stores")
		require.True(t, d.Redirect())
		assert.Equal(t, "/signin", d.To)
	})
}

func TestGuest_Evaluate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stalls while loading", func(t *testing.T) {
		t.Parallel()

		g := guard.NewGuest(loadingController())
		assert.True(t, g.Evaluate(ctx, "/login").Pending())
	})

	t.Run("renders for anonymous visitors", func(t *testing.T) {
		t.Parallel()

		g := guard.NewGuest(anonymousController())
		assert.True(t, g.Evaluate(ctx, "/login").Render())
	})

	t.Run("redirects each role to its fixed landing", func(t *testing.T) {
		t.Parallel()

		landings := map[session.Role]string{
			session.RoleAdmin:      "/admin/dashboard",
			session.RoleStoreOwner: "/owner/dashboard",
			session.RoleNormalUser: "/stores",
		}

		for role, want := range landings {
			g := guard.NewGuest(authenticatedController(role))
			d := g.Evaluate(ctx, "/login")
			require.True(t, d.Redirect(), "role %s must never render guest views", role)
			assert.Equal(t, want, d.To)
		}
	})

	t.Run("unknown role falls through to render", func(t *testing.T) {
		t.Parallel()

		g := guard.NewGuest(authenticatedController(session.Role("Mystery")))
		assert.True(t, g.Evaluate(ctx, "/login").Render())
	})
}

func TestPaths_Landing(t *testing.T) {
	t.Parallel()

	paths := guard.DefaultPaths()
	assert.Equal(t, "/admin/dashboard", paths.Landing(session.RoleAdmin))
	assert.Equal(t, "/owner/dashboard", paths.Landing(session.RoleStoreOwner))
	assert.Equal(t, "/stores", paths.Landing(session.RoleNormalUser))
	assert.Empty(t, paths.Landing(session.Role("nope")))
}
