// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields:
//
//	var cfg config.Client
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// or panic on failure at startup
//	config.MustLoad(&cfg)
//
// Client is the session client's own configuration; any struct with env
// tags works with Load and MustLoad and is cached independently per type.
package config
