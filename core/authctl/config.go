package authctl

import (
	"io"
	"log/slog"
	"time"

	"github.com/storeratings/authkit/core/authtransport"
)

// Config holds controller configuration.
type Config struct {
	// CheckInterval is how often the background revalidation fires.
	CheckInterval time.Duration
	// Logger for structured logging (default: discard).
	Logger *slog.Logger
	// Registry the controller attaches itself to on Start and detaches
	// from on Close, so the transport can terminate the session.
	Registry *authtransport.Registry
	// BroadcastBuffer is the per-subscriber state buffer size.
	BroadcastBuffer int
}

func defaultConfig() *Config {
	return &Config{
		CheckInterval:   5 * time.Minute,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		BroadcastBuffer: 16,
	}
}

// Option is a functional option for configuring the controller.
type Option func(*Config)

// WithCheckInterval sets the background revalidation interval (default: 5m).
func WithCheckInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.CheckInterval = interval
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

// WithRegistry wires the terminator registry the transport invokes on 401.
func WithRegistry(registry *authtransport.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithBroadcastBuffer sets the per-subscriber state buffer size (default: 16).
func WithBroadcastBuffer(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.BroadcastBuffer = size
		}
	}
}
