package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisSlots stores the local fallback slots in Redis so several server
// instances can share drafts and offline submissions.
type RedisSlots struct {
	client    *redis.Client
	namespace string
	logger    *slog.Logger
}

func NewRedisSlots(client *redis.Client, namespace string, logger *slog.Logger) *RedisSlots {
	return &RedisSlots{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

func (r *RedisSlots) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *RedisSlots) Read(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, nil
}

func (r *RedisSlots) Write(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (r *RedisSlots) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	return nil
}

func (r *RedisSlots) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.key(prefix)+"*", 100).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if r.namespace != "" {
			k = k[len(r.namespace)+1:]
		}
		keys = append(keys, k)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan slots: %w", err)
	}
	return keys, nil
}

func (r *RedisSlots) Close() error {
	r.logger.Debug("Closing redis slot store", "namespace", r.namespace)
	return r.client.Close()
}
