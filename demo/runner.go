package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Runner executes registered snippets in order.
type Runner struct {
	Registry *Registry
	Logger   *zap.Logger

	// Headers prints a "== srp/good: Single Responsibility Principle ==" line
	// before each snippet.
	Headers bool
}

// NewRunner returns a Runner over reg. A nil logger is replaced by zap.NewNop.
func NewRunner(reg *Registry, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Registry: reg, Logger: logger}
}

// Run executes keys in order and stops at the first error.
// ctx is checked between snippets; a snippet itself is never interrupted.
func (r *Runner) Run(ctx context.Context, w io.Writer, keys ...Key) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			log.Warn("demo run cancelled", zap.Stringer("next", key), zap.Error(err))
			return err
		}

		fn, ok, err := r.Registry.Resolve(key)
		if err != nil {
			return err
		}
		if !ok {
			log.Error("demo not registered", zap.Stringer("demo", key))
			return MissingDemoError{Key: key}
		}

		if r.Headers {
			if _, err := fmt.Fprintf(w, "== %s: %s ==\n", key, key.Principle.Title()); err != nil {
				return err
			}
		}

		start := time.Now()
		log.Debug("demo started", zap.Stringer("demo", key))
		if err := fn(w); err != nil {
			log.Error("demo failed", zap.Stringer("demo", key), zap.Error(err))
			return fmt.Errorf("demo %s: %w", key, err)
		}
		log.Info("demo finished",
			zap.Stringer("demo", key),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return nil
}
