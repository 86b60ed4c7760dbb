// Package config loads environment variables into typed configuration
// structs using github.com/caarlos0/env struct tags. A .env file in the
// working directory is loaded once, if present, before the first parse.
//
//	type ServerConfig struct {
//	    Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // required variable missing or unparsable
//	}
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilPointer is returned when Load receives a nil destination.
var ErrNilPointer = errors.New("config: destination must be a non-nil pointer")

var dotenvOnce sync.Once

// Load parses environment variables into v based on its env struct tags.
// The default .env file is loaded on the first call; a missing file is not
// an error.
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("config: parse %T: %w", v, err)
	}
	return nil
}

// MustLoad is Load that panics on failure. Intended for process startup
// where a broken configuration should prevent the service from running.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
