package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_ExclusiveUntilUnlocked(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlock, acquired, err := locker.TryLock(ctx, "fan-out", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, acquired, err = locker.TryLock(ctx, "fan-out", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	_, acquired, err = locker.TryLock(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	require.NoError(t, unlock(ctx))

	_, acquired, err = locker.TryLock(ctx, "fan-out", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLocalLocker_ExpiredLockCanBeTaken(t *testing.T) {
	now := time.Date(2025, 1, 15, 8, 1, 0, 0, time.UTC)
	locker := &localLocker{locks: make(map[string]localLock), now: func() time.Time { return now }}
	ctx := context.Background()

	staleUnlock, acquired, _ := locker.TryLock(ctx, "fan-out", 30*time.Second)
	require.True(t, acquired)

	now = now.Add(31 * time.Second)
	_, acquired, _ = locker.TryLock(ctx, "fan-out", 30*time.Second)
	require.True(t, acquired)

	// The stale holder must not release the new owner's lock.
	require.NoError(t, staleUnlock(ctx))
	_, acquired, _ = locker.TryLock(ctx, "fan-out", 30*time.Second)
	assert.False(t, acquired)
}

func TestLocalLocker_ConcurrentCallersGetOneWinner(t *testing.T) {
	locker := NewLocalLocker()
	var winners atomic.Int32
	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, acquired, _ := locker.TryLock(context.Background(), "fan-out", time.Minute); acquired {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
