package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseFailed is returned when environment parsing fails.
var ErrParseFailed = errors.New("config: failed to parse environment")

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// .env loading happens once per process, before the first parse.
	dotenvOnce sync.Once
)

// Load populates cfg from environment variables. Each configuration type
// is parsed once per process and cached; later calls for the same type
// return the cached value. A .env file in the working directory is loaded
// on first use when present.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Absence of a .env file is the normal production case.
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load that panics on failure. Useful at startup where a
// missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
