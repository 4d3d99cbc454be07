// Package arclog is the process-wide leveled logging sink used by arcstk.
//
// It has an explicit Init/Shutdown lifecycle rather than a package-level
// init() singleton: library code may call the package-level logging
// functions at any time, but they are no-ops until a caller opts in with
// Init. This keeps library code free of hidden global side effects while
// still letting every package log unconditionally.
package arclog

import (
	"sync"

	"go.uber.org/zap"
)

// mu guards the sink handle so that Init/Shutdown can swap it safely
// while other goroutines log.
var (
	mu   sync.RWMutex
	sink *zap.SugaredLogger
)

// Options configures Init.
type Options struct {
	// Development selects zap's human-friendlier development encoder
	// config instead of the production JSON encoder.
	Development bool
}

// Init installs the process-wide sink. It is safe to call again with
// different Options to reconfigure the sink; the previous sink is flushed
// via Shutdown's logic first.
func Init(opts Options) error {
	var logger *zap.Logger
	var err error
	if opts.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	mu.Lock()
	if sink != nil {
		_ = sink.Sync()
	}
	sink = logger.Sugar()
	mu.Unlock()
	return nil
}

// Shutdown flushes and releases the process-wide sink. After Shutdown,
// logging calls silently become no-ops again until the next Init.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	if sink == nil {
		return nil
	}
	err := sink.Sync()
	sink = nil
	return err
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sink
}

// Debugf logs at debug level. A no-op before Init.
func Debugf(template string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(template, args...)
	}
}

// Infof logs at info level. A no-op before Init.
func Infof(template string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(template, args...)
	}
}

// Warnf logs at warn level. A no-op before Init.
func Warnf(template string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(template, args...)
	}
}

// Errorf logs at error level. A no-op before Init.
func Errorf(template string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(template, args...)
	}
}
