package lock

import (
	"context"
	"time"

	"reminder/internal/domain/service"
	"reminder/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisLocker creates a RunLocker shared by every instance using the same Redis
func NewRedisLocker(client *redis.Client, keyPrefix string) service.RunLocker {
	return &redisLocker{client: client, keyPrefix: keyPrefix}
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (service.Unlock, bool, error) {
	fullKey := l.keyPrefix + "lock:" + key
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "acquire lock %s", fullKey)
	}
	if !acquired {
		return nil, false, nil
	}

	unlock := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
			return errors.Wrapf(err, "release lock %s", fullKey)
		}

		return nil
	}

	return unlock, true, nil
}
