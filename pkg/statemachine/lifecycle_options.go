package statemachine

import (
	"log/slog"

	"github.com/google/uuid"
)

// LifecycleOption configures a Lifecycle.
type LifecycleOption func(*lifecycleConfig)

type lifecycleConfig struct {
	id    uuid.UUID
	log   *slog.Logger
	hooks []Action
}

// WithLogger sets the logger for transition records.
// Accepted transitions are logged at debug level, rejected ones at info.
func WithLogger(log *slog.Logger) LifecycleOption {
	return func(c *lifecycleConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithID overrides the randomly generated instance ID.
func WithID(id uuid.UUID) LifecycleOption {
	return func(c *lifecycleConfig) {
		c.id = id
	}
}

// WithOnTransition registers a hook that runs before every state change.
// For start and pause a hook error aborts the transition; for stop and reset
// the error is logged and the transition proceeds.
// Hooks run without any lock held and may call back into the Lifecycle.
func WithOnTransition(hook Action) LifecycleOption {
	return func(c *lifecycleConfig) {
		if hook != nil {
			c.hooks = append(c.hooks, hook)
		}
	}
}
