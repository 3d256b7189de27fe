package authtransport

import (
	"io"
	"log/slog"
	"net/http"
)

// Config holds transport configuration.
type Config struct {
	// Base is the RoundTripper requests are forwarded to.
	Base http.RoundTripper
	// Navigator receives forced redirects on 401/403.
	Navigator Navigator
	// Logger for structured logging (default: discard).
	Logger *slog.Logger

	// AuthPaths are endpoint paths exempt from 401/403 handling, so a
	// failed credential submission stays an ordinary rejected call.
	AuthPaths []string
	// RestrictedPrefixes are the location prefixes a 403 redirects out of.
	RestrictedPrefixes []string
	// LoginPath is the anonymous entry location 401s navigate to.
	LoginPath string
	// SignupPath is the registration location also exempt from the 401 redirect.
	SignupPath string
	// HomePath is the public location 403s navigate to.
	HomePath string
}

func defaultConfig() *Config {
	return &Config{
		Base:               http.DefaultTransport,
		Navigator:          NoOpNavigator{},
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthPaths:          []string{"/auth/login", "/auth/signup"},
		RestrictedPrefixes: []string{"/admin", "/owner"},
		LoginPath:          "/login",
		SignupPath:         "/signup",
		HomePath:           "/",
	}
}

// Option is a functional option for configuring the transport.
type Option func(*Config)

// WithBase sets the underlying RoundTripper (default: http.DefaultTransport).
func WithBase(base http.RoundTripper) Option {
	return func(c *Config) {
		if base != nil {
			c.Base = base
		}
	}
}

// WithNavigator sets the navigation surface for forced redirects.
func WithNavigator(nav Navigator) Option {
	return func(c *Config) {
		if nav != nil {
			c.Navigator = nav
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		if log != nil {
			c.Logger = log
		}
	}
}

// WithAuthPaths overrides the endpoint paths exempt from global handling.
func WithAuthPaths(paths ...string) Option {
	return func(c *Config) {
		c.AuthPaths = paths
	}
}

// WithRestrictedPrefixes overrides the admin/owner location prefixes.
func WithRestrictedPrefixes(prefixes ...string) Option {
	return func(c *Config) {
		c.RestrictedPrefixes = prefixes
	}
}
