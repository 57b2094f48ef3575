// Package lock provides the run lock guarding overlapping fan-out runs.
package lock

import (
	"context"
	"sync"
	"time"

	"reminder/internal/domain/service"
)

type localLock struct {
	owner     uint64
	expiresAt time.Time
}

type localLocker struct {
	mu    sync.Mutex
	locks map[string]localLock
	seq   uint64
	now   func() time.Time
}

// NewLocalLocker creates a RunLocker scoped to this process
func NewLocalLocker() service.RunLocker {
	return &localLocker{
		locks: make(map[string]localLock),
		now:   time.Now,
	}
}

func (l *localLocker) TryLock(_ context.Context, key string, ttl time.Duration) (service.Unlock, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.locks[key]; ok && now.Before(held.expiresAt) {
		return nil, false, nil
	}

	l.seq++
	owner := l.seq
	l.locks[key] = localLock{owner: owner, expiresAt: now.Add(ttl)}

	unlock := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		// An expired lock may already belong to someone else.
		if held, ok := l.locks[key]; ok && held.owner == owner {
			delete(l.locks, key)
		}

		return nil
	}

	return unlock, true, nil
}
