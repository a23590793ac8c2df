// Package logger provides the process-wide structured logger for the
// financas services, built on Zap's sugared API.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment. The
// "production" environment gets a JSON encoder; anything else gets the
// human-readable console encoder. Repeated calls are no-ops.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			// A broken logger must not take the service down with it.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development
// logger when Init has not been called yet.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered log entries. Deferred from the entrypoints.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
