package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvErr  error

	mu    sync.Mutex
	cache = map[reflect.Type]any{}
)

// Load fills cfg from the environment, reusing the value cached for T by an
// earlier successful call.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config: nil destination")
	}

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := Parse(cfg); err != nil {
		return err
	}

	cache[typ] = *cfg
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the environment without consulting the cache.
func Parse[T any](cfg *T) error {
	if err := loadDotenv(); err != nil {
		return err
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %T: %w", *cfg, err)
	}
	return nil
}

// loadDotenv reads .env once. A missing file is not an error; variables
// already set in the process environment are never overridden.
func loadDotenv() error {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = fmt.Errorf("config: load .env: %w", err)
		}
	})
	return dotenvErr
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
