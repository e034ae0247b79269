package kv

import (
	"bytes"
	"context"
	"errors"

	"eatery-api/internal/infra"
	"eatery-api/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// RedisStore shares the collections between processes through a Redis
// instance. CompareAndSwap relies on optimistic locking (WATCH).
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) (*RedisStore, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to ping redis", err)
	}

	cleanup := func() {
		_ = client.Close()
	}

	return &RedisStore{client: client}, cleanup, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr(infra.KindStoreFailure, "failed to read key "+key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to write key "+key, err)
	}
	return nil
}

func (s *RedisStore) CompareAndSwap(ctx context.Context, key string, expected, next []byte) error {
	txn := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			if expected != nil {
				return infra.WrapRepoErr(infra.KindConflict, "stored value changed under key: "+key, nil)
			}
		case err != nil:
			return infra.WrapRepoErr(infra.KindStoreFailure, "failed to read key "+key, err)
		default:
			if expected == nil || !bytes.Equal(current, expected) {
				return infra.WrapRepoErr(infra.KindConflict, "stored value changed under key: "+key, nil)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txn, key)
	if errors.Is(err, redis.TxFailedErr) {
		return infra.WrapRepoErr(infra.KindConflict, "stored value changed under key: "+key, err)
	}
	if err != nil && !infra.IsKind(err, infra.KindConflict) && !infra.IsKind(err, infra.KindStoreFailure) {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to swap key "+key, err)
	}
	return err
}
