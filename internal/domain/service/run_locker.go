package service

import (
	"context"
	"time"
)

// Unlock releases a lock obtained from a RunLocker.
type Unlock func(ctx context.Context) error

// RunLocker grants exclusive, expiring ownership of a named run.
type RunLocker interface {
	// TryLock acquires key for ttl without waiting. acquired is false when another holder owns it.
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock Unlock, acquired bool, err error)
}
