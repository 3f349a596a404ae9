// Package logger holds the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init configures the global logger for env. "production" logs JSON at info
// level, "test" discards everything, anything else logs readable console
// output at debug level. Only the first call has an effect.
func Init(env string) {
	once.Do(func() {
		base, err := build(env)
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

func build(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "test":
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment()
	}
}

// Get returns the global sugared logger, initializing a development logger
// if Init was never called.
func Get() *zap.SugaredLogger {
	Init("development")
	return sugar
}

// Named returns a child logger tagged with component, e.g. "session".
func Named(component string) *zap.SugaredLogger {
	return Get().Named(component)
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
