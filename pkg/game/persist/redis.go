package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps snapshots as string values in Redis with a TTL.
// Saves to one key are serialized with a redsync lock so concurrent
// writers cannot interleave.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store using client. A ttlSeconds of zero keeps
// snapshots forever.
func NewRedisStore(client *redis.Client, prefix string, ttlSeconds int) *RedisStore {
	return &RedisStore{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

// Save stores the snapshot under key.
func (r *RedisStore) Save(ctx context.Context, key string, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	mutex := r.locker.NewMutex(r.key(key) + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("lock snapshot %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}

// Load reads the snapshot stored under key.
func (r *RedisStore) Load(ctx context.Context, key string) (Snapshot, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, key)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return Decode(data)
}
