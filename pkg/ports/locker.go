package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a lock.
type UnlockFunc func(ctx context.Context) error

// ArmLocker grants exclusive use of an arm.
// It keeps two sessions from commanding the same arm, even across processes.
type ArmLocker interface {
	// Lock blocks until the lease for key (the arm name) is acquired, the
	// context is canceled, or the implementation gives up.
	// Returns an UnlockFunc that MUST be called to release the lease.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
