package painter

import (
	"log/slog"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
	"github.com/aretw0/easel/pkg/transform"
)

// Option configures the Painter.
type Option func(*Painter)

// WithStore records progress checkpoints in store.
func WithStore(store ports.StateStore) Option {
	return func(p *Painter) {
		p.store = store
	}
}

// WithLocker takes a lease on the arm for the duration of each session.
func WithLocker(locker ports.ArmLocker) Option {
	return func(p *Painter) {
		p.locker = locker
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Painter) {
		p.hooks = p.hooks.Merge(hooks)
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Painter) {
		p.logger = logger
	}
}

// WithSessionIDs replaces the session ID generator.
func WithSessionIDs(next func() string) Option {
	return func(p *Painter) {
		p.newID = next
	}
}

// WithOrientation replaces the fixed-orientation strategy.
func WithOrientation(strategy transform.OrientationStrategy) Option {
	return func(p *Painter) {
		p.orientation = strategy
	}
}
