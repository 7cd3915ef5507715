package lockout

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// staleTTL bounds how long abandoned throttle state survives in Redis.
const staleTTL = 24 * time.Hour

// RedisLedger implements Ledger using a Redis hash per key, so the login
// throttle is shared across controller instances.
type RedisLedger struct {
	client *redis.Client
}

// NewRedisLedger creates a ledger backed by the given Redis client.
func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func redisKey(key string) string {
	return "mira:lockout:" + key
}

// Get returns the current state for the key.
func (l *RedisLedger) Get(ctx context.Context, key string) (State, error) {
	data, err := l.client.HGetAll(ctx, redisKey(key)).Result()
	if err != nil {
		return State{}, err
	}
	if len(data) == 0 {
		return State{}, nil
	}

	state := State{}
	if raw, ok := data["failed_count"]; ok {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			state.FailedCount = n
		}
	}
	if raw, ok := data["locked_since"]; ok && raw != "" {
		if unix, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil && unix > 0 {
			t := time.UnixMilli(unix).UTC()
			state.LockedSince = &t
		}
	}
	return state, nil
}

// RecordFailure increments the failed-attempt count, locking the key when
// the threshold is reached.
func (l *RedisLedger) RecordFailure(ctx context.Context, key string, now time.Time, threshold int) (State, error) {
	rk := redisKey(key)

	count, err := l.client.HIncrBy(ctx, rk, "failed_count", 1).Result()
	if err != nil {
		return State{}, err
	}

	state := State{FailedCount: int(count)}
	if int(count) >= threshold {
		since := now.UTC()
		_, err = l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSetNX(ctx, rk, "locked_since", since.UnixMilli())
			p.Expire(ctx, rk, staleTTL)
			return nil
		})
		if err != nil {
			return State{}, err
		}
		// Re-read in case another instance locked first.
		return l.Get(ctx, key)
	}

	_ = l.client.Expire(ctx, rk, staleTTL).Err()
	return state, nil
}

// Clear resets the key.
func (l *RedisLedger) Clear(ctx context.Context, key string) error {
	return l.client.Del(ctx, redisKey(key)).Err()
}

var _ Ledger = (*RedisLedger)(nil)
