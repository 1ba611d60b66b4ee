package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/easel/pkg/ports"
)

// Locker implements ports.ArmLocker within a single process.
// The TTL is ignored: a lease lives until it is released.
type Locker struct {
	mu     sync.Mutex
	leases map[string]chan struct{}
}

// NewLocker creates an in-process locker.
func NewLocker() *Locker {
	return &Locker{leases: make(map[string]chan struct{})}
}

// Lock blocks until key is free or ctx is done.
func (l *Locker) Lock(ctx context.Context, key string, _ time.Duration) (ports.UnlockFunc, error) {
	for {
		l.mu.Lock()
		held, busy := l.leases[key]
		if !busy {
			released := make(chan struct{})
			l.leases[key] = released
			l.mu.Unlock()

			var once sync.Once
			return func(context.Context) error {
				once.Do(func() {
					l.mu.Lock()
					delete(l.leases, key)
					l.mu.Unlock()
					close(released)
				})
				return nil
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-held:
		}
	}
}
