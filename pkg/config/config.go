package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNoValue indicates no value was set for the config
	ErrNoValue = errors.New("config: no value set")

	// ErrShutdown indicates the use of a Config after calling Shutdown
	ErrShutdown = errors.New("config: shutdown")
)

// Config is a source of a single raw configuration value
type Config interface {
	// Get returns the latest raw value
	Get(ctx context.Context) (interface{}, error)

	// Shutdown signals the config to stop all underlying resources
	Shutdown()
}

// NoopConfig is a config that never yields a value, so typed wrappers always
// fall back to their defaults.
var NoopConfig = &noopConfig{}

type noopConfig struct{}

func (*noopConfig) Get(_ context.Context) (interface{}, error) {
	return nil, ErrNoValue
}

func (*noopConfig) Shutdown() {
}

// Value is a typed view over a Config.
type Value[T any] interface {
	// Get returns the current value, or the last known good value when the
	// source errors.
	Get(ctx context.Context) T

	// GetSafe is like Get, but also surfaces the source error
	GetSafe(ctx context.Context) (T, error)

	Shutdown()
}

// String provides a string typed config.Config.
type String = Value[string]

// Strings provides a string list typed config.Config. Raw values are comma
// separated.
type Strings = Value[[]string]

// Duration provides a time.Duration typed config.Config.
type Duration = Value[time.Duration]
