package authctl

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/storeratings/authkit/core/authapi"
	"github.com/storeratings/authkit/core/session"
	"github.com/storeratings/authkit/pkg/broadcast"
	"github.com/storeratings/authkit/pkg/logger"
)

// API is the slice of the backend client the controller needs.
// *authapi.Client satisfies it.
type API interface {
	Login(ctx context.Context, email, password string) (*authapi.Credentials, error)
	Signup(ctx context.Context, params authapi.SignupParams) (*authapi.Credentials, error)
	Profile(ctx context.Context) (*session.User, error)
}

// State is the session state the controller publishes to subscribers.
// Authenticated is re-derived from the store at publish time, never cached.
type State struct {
	User          *session.User
	Loading       bool
	Authenticated bool
}

// Controller owns the session lifecycle: login, signup, logout, token
// validation and the periodic background revalidation. It mirrors the
// persisted credential into memory for reactivity, but the store remains
// the source of truth for whether a token exists.
//
// Exactly one controller should be active per process; it registers itself
// as the transport's terminator on Start and detaches on Close.
type Controller struct {
	store       session.Store
	api         API
	cfg         *Config
	broadcaster *broadcast.MemoryBroadcaster[State]

	mu      sync.RWMutex
	user    *session.User
	loading bool

	validate singleflight.Group

	startOnce sync.Once
	closeOnce sync.Once
	stop      chan struct{}
}

// New creates a controller over the given credential store and backend
// client. Call Start before use and Close on teardown.
func New(store session.Store, api API, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Controller{
		store:       store,
		api:         api,
		cfg:         cfg,
		broadcaster: broadcast.NewMemoryBroadcaster[State](cfg.BroadcastBuffer),
		loading:     true,
		stop:        make(chan struct{}),
	}
}

// Start runs the one-time initialization protocol: attempt to restore a
// persisted session (silently, so a backend blip on startup does not wipe
// a valid credential), clear the loading flag, and begin the periodic
// revalidation. Runs once per controller lifetime; later calls are no-ops.
//
// The background timer stops when ctx is cancelled or Close is called,
// whichever comes first.
func (c *Controller) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.setLoading(true)

		if c.cfg.Registry != nil {
			c.cfg.Registry.Set(c)
		}

		if session.HasToken(ctx, c.store) {
			c.ValidateToken(ctx, true)
		} else {
			// No token is normal for a first visit, not an error.
			c.setUser(nil)
		}

		c.setLoading(false)

		go c.revalidateLoop(ctx)
	})
}

// Close tears the controller down: stops the background timer, detaches
// from the terminator registry so the transport cannot invoke a dead
// controller, and closes the state broadcaster. Idempotent.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.stop)
		if c.cfg.Registry != nil {
			c.cfg.Registry.Set(nil)
		}
		c.broadcaster.Close()
	})
}

// Login exchanges credentials for a session. On success the token and user
// are persisted together and mirrored into memory; on failure the returned
// error is an *AuthError carrying a display-ready message.
func (c *Controller) Login(ctx context.Context, email, password string) (*session.User, error) {
	c.setLoading(true)
	defer c.setLoading(false)

	creds, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.cfg.Logger.ErrorContext(ctx, "login failed",
			logger.Component("authctl"),
			logger.Error(err),
		)
		return nil, flatten(err, loginFallback)
	}

	c.persist(ctx, creds)
	return creds.User, nil
}

// Signup registers a new account. Same persistence contract as Login.
func (c *Controller) Signup(ctx context.Context, params authapi.SignupParams) (*session.User, error) {
	c.setLoading(true)
	defer c.setLoading(false)

	creds, err := c.api.Signup(ctx, params)
	if err != nil {
		c.cfg.Logger.ErrorContext(ctx, "signup failed",
			logger.Component("authctl"),
			logger.Error(err),
		)
		return nil, flatten(err, signupFallback)
	}

	c.persist(ctx, creds)
	return creds.User, nil
}

// Logout unconditionally clears the persisted credential and the in-memory
// state. Safe to call on an already-anonymous session.
func (c *Controller) Logout(ctx context.Context) {
	if err := session.Clear(ctx, c.store); err != nil {
		c.cfg.Logger.ErrorContext(ctx, "failed to clear credential store",
			logger.Component("authctl"),
			logger.Error(err),
		)
	}
	c.setUser(nil)
}

// TerminateSession implements authtransport.Terminator. The transport has
// already cleared the store by the time it invokes the registry; Logout
// runs anyway since clearing is idempotent.
func (c *Controller) TerminateSession() {
	c.Logout(context.Background())
}

// ValidateToken revalidates the persisted credential against the backend
// and reports whether the session is valid.
//
// Without a token it returns false; when silent it leaves all state
// untouched, otherwise it clears the in-memory user (there is nothing in
// the store to clear).
//
// With a token it fetches the profile. Success replaces the persisted and
// in-memory user and returns true. Failure returns false; when silent the
// session deliberately survives (background and navigation checks are
// advisory and must not log anyone out on a blip; only a real 401 through
// the transport, or a non-silent check, terminates), otherwise Logout runs.
//
// Overlapping calls collapse into a single profile request; every caller
// observes the shared result.
func (c *Controller) ValidateToken(ctx context.Context, silent bool) bool {
	token, err := c.store.Token(ctx)
	if err != nil || token == "" {
		if !silent {
			c.setUser(nil)
		}
		return false
	}

	result, err, shared := c.validate.Do("profile", func() (any, error) {
		return c.api.Profile(ctx)
	})
	if err != nil {
		c.cfg.Logger.WarnContext(ctx, "token validation failed",
			logger.Component("authctl"),
			logger.Event("validate_token"),
			logger.Error(err),
		)
		if !silent {
			c.Logout(ctx)
		}
		return false
	}

	user := result.(*session.User)
	if err := c.store.SetUser(ctx, user); err != nil {
		c.cfg.Logger.ErrorContext(ctx, "failed to persist refreshed user",
			logger.Component("authctl"),
			logger.Error(err),
		)
	}
	c.setUser(user)

	if shared {
		c.cfg.Logger.DebugContext(ctx, "validation deduplicated",
			logger.Component("authctl"),
			logger.Event("validate_token"),
		)
	}
	return true
}

// RefreshUser fetches the current profile and replaces the stored user.
// Always non-silent: any failure logs the session out and returns the
// error so the caller knows the refresh did not happen.
func (c *Controller) RefreshUser(ctx context.Context) (*session.User, error) {
	user, err := c.api.Profile(ctx)
	if err != nil {
		c.cfg.Logger.ErrorContext(ctx, "failed to refresh user",
			logger.Component("authctl"),
			logger.Error(err),
		)
		c.Logout(ctx)
		return nil, err
	}

	if err := c.store.SetUser(ctx, user); err != nil {
		c.cfg.Logger.ErrorContext(ctx, "failed to persist refreshed user",
			logger.Component("authctl"),
			logger.Error(err),
		)
	}
	c.setUser(user)
	return user, nil
}

// Current returns the present session state. Authenticated requires both
// the in-memory user and a token in the store, checked now.
func (c *Controller) Current(ctx context.Context) State {
	c.mu.RLock()
	user := c.user
	loading := c.loading
	c.mu.RUnlock()

	return State{
		User:          user,
		Loading:       loading,
		Authenticated: user != nil && session.HasToken(ctx, c.store),
	}
}

// Subscribe returns a subscriber receiving every state change until ctx is
// cancelled or the controller is closed.
func (c *Controller) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	return c.broadcaster.Subscribe(ctx)
}

// IsAuthenticated reports whether the session is authenticated right now.
func (c *Controller) IsAuthenticated(ctx context.Context) bool {
	return c.Current(ctx).Authenticated
}

// IsAdmin reports whether the current user holds the administrator role.
func (c *Controller) IsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil && c.user.Role == session.RoleAdmin
}

// IsStoreOwner reports whether the current user holds the store owner role.
func (c *Controller) IsStoreOwner() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil && c.user.Role == session.RoleStoreOwner
}

// IsNormalUser reports whether the current user holds the normal user role.
func (c *Controller) IsNormalUser() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil && c.user.Role == session.RoleNormalUser
}

// Session returns the current session value: the stored token (empty when
// absent) paired with the in-memory user.
func (c *Controller) Session(ctx context.Context) session.Session {
	c.mu.RLock()
	user := c.user
	c.mu.RUnlock()

	token, err := c.store.Token(ctx)
	if err != nil {
		token = ""
	}
	return session.Session{Token: token, User: user}
}

// revalidateLoop fires a silent validation every CheckInterval while a
// token is present. Its lifetime is 1:1 with the controller's: it exits on
// Close or when the Start context is cancelled.
func (c *Controller) revalidateLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if session.HasToken(ctx, c.store) {
				c.ValidateToken(ctx, true)
			}
		}
	}
}

func (c *Controller) setUser(user *session.User) {
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
	c.publish()
}

// persist writes token and user together, then mirrors into memory.
func (c *Controller) persist(ctx context.Context, creds *authapi.Credentials) {
	if err := c.store.SetToken(ctx, creds.Token); err != nil {
		c.cfg.Logger.ErrorContext(ctx, "failed to persist token",
			logger.Component("authctl"),
			logger.Error(err),
		)
	}
	if err := c.store.SetUser(ctx, creds.User); err != nil {
		c.cfg.Logger.ErrorContext(ctx, "failed to persist user",
			logger.Component("authctl"),
			logger.Error(err),
		)
	}
	c.setUser(creds.User)
}

func (c *Controller) publish() {
	ctx := context.Background()
	_ = c.broadcaster.Broadcast(ctx, broadcast.Message[State]{Data: c.Current(ctx)})
}
