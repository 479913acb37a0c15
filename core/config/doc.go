// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use, if
// one exists, and uses the caarlos0/env library for parsing environment
// variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/jwtkit/core/config"
//
//	var cfg jwt.Config
//
//	// Load with error handling
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 jwt.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 jwt.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Use Parse to bypass the cache, for example when the environment is
// changed at runtime.
package config
