// Package authkit wires the session client together: credential store,
// bearer transport, backend client, lifecycle controller and route guards,
// assembled from a single configuration at the composition root.
//
//	var cfg config.Client
//	config.MustLoad(&cfg)
//
//	kit, err := authkit.New(cfg, authkit.WithNavigator(router))
//	if err != nil {
//		log.Fatal(err)
//	}
//	kit.Start(ctx)
//	defer kit.Close()
//
//	user, err := kit.Controller.Login(ctx, email, password)
//
// Views talk to kit.Controller, route policies come from kit.Protected and
// kit.Guest, and any additional backend client should be built on kit.HTTP
// so every request shares the token attachment and failure handling.
package authkit

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/storeratings/authkit/core/authapi"
	"github.com/storeratings/authkit/core/authctl"
	"github.com/storeratings/authkit/core/authtransport"
	"github.com/storeratings/authkit/core/config"
	"github.com/storeratings/authkit/core/guard"
	"github.com/storeratings/authkit/core/session"
)

// Kit is the assembled session client.
type Kit struct {
	// Store is the credential store selected by the configuration:
	// Redis when RedisURL is set, the state file when StateFile is set,
	// otherwise in-memory.
	Store session.Store
	// Registry is the terminator slot connecting transport and controller.
	Registry *authtransport.Registry
	// HTTP is the client every backend call should go through.
	HTTP *http.Client
	// API is the typed authentication endpoint client.
	API *authapi.Client
	// Controller owns the session lifecycle.
	Controller *authctl.Controller

	paths guard.Paths
}

type options struct {
	navigator authtransport.Navigator
	logger    *slog.Logger
	paths     guard.Paths
}

// Option configures the kit.
type Option func(*options)

// WithNavigator wires the view layer's router into transport redirects.
func WithNavigator(nav authtransport.Navigator) Option {
	return func(o *options) {
		if nav != nil {
			o.navigator = nav
		}
	}
}

// WithLogger sets the structured logger shared by all components.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithPaths overrides the navigation surface used by guards.
func WithPaths(paths guard.Paths) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// New assembles a session client from configuration.
func New(cfg config.Client, opts ...Option) (*Kit, error) {
	o := &options{
		navigator: authtransport.NoOpNavigator{},
		paths:     guard.DefaultPaths(),
	}
	for _, opt := range opts {
		opt(o)
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	registry := authtransport.NewRegistry()

	transportOpts := []authtransport.Option{
		authtransport.WithNavigator(o.navigator),
	}
	ctlOpts := []authctl.Option{
		authctl.WithRegistry(registry),
		authctl.WithCheckInterval(cfg.CheckInterval),
	}
	apiOpts := []authapi.Option{}
	if o.logger != nil {
		transportOpts = append(transportOpts, authtransport.WithLogger(o.logger))
		ctlOpts = append(ctlOpts, authctl.WithLogger(o.logger))
		apiOpts = append(apiOpts, authapi.WithLogger(o.logger))
	}

	httpClient := &http.Client{
		Transport: authtransport.New(store, registry, transportOpts...),
		Timeout:   cfg.RequestTimeout,
	}
	apiOpts = append(apiOpts, authapi.WithHTTPClient(httpClient))

	api := authapi.New(cfg.APIBaseURL, apiOpts...)

	return &Kit{
		Store:      store,
		Registry:   registry,
		HTTP:       httpClient,
		API:        api,
		Controller: authctl.New(store, api, ctlOpts...),
		paths:      o.paths,
	}, nil
}

// Start runs the controller's one-time initialization protocol.
func (k *Kit) Start(ctx context.Context) {
	k.Controller.Start(ctx)
}

// Close tears the controller down and detaches it from the registry.
func (k *Kit) Close() {
	k.Controller.Close()
}

// Protected builds a route guard for authenticated destinations, using the
// kit's controller and navigation surface.
func (k *Kit) Protected(opts ...guard.ProtectedOption) *guard.Protected {
	opts = append([]guard.ProtectedOption{guard.WithPaths(k.paths)}, opts...)
	return guard.NewProtected(k.Controller, opts...)
}

// Guest builds a route guard for anonymous-only destinations.
func (k *Kit) Guest(opts ...guard.GuestOption) *guard.Guest {
	opts = append([]guard.GuestOption{guard.WithGuestPaths(k.paths)}, opts...)
	return guard.NewGuest(k.Controller, opts...)
}

func newStore(cfg config.Client) (session.Store, error) {
	switch {
	case cfg.RedisURL != "":
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(redis.NewClient(redisOpts), "authkit:session"), nil
	case cfg.StateFile != "":
		return session.NewFileStore(cfg.StateFile), nil
	default:
		return session.NewMemoryStore(), nil
	}
}
