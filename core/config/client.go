package config

import "time"

// Client is the configuration of the session client: where the backend
// lives, where the credential is persisted, and how often the background
// revalidation fires.
type Client struct {
	// APIBaseURL is the backend root all auth endpoints hang off.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`

	// StateFile is the path of the file-backed credential store.
	// Empty selects the in-memory store.
	StateFile string `env:"SESSION_STATE_FILE"`

	// RedisURL selects the Redis-backed credential store when set,
	// e.g. redis://localhost:6379/0. Takes precedence over StateFile.
	RedisURL string `env:"SESSION_REDIS_URL"`

	// CheckInterval is the background revalidation period.
	CheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL" envDefault:"5m"`

	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"15s"`
}
