// Package redisstore persists the store snapshot under a single Redis key.
package redisstore

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store"
)

const defaultKey = "dms:snapshot"

type Store struct {
	client *redis.Client
	key    string
}

func New(addr string, password string, db int) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Store{client: client, key: defaultKey}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, store.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot from redis: %w", err)
	}
	return val, nil
}

func (s *Store) Save(ctx context.Context, snapshot []byte) error {
	// No TTL: the snapshot is the system of record, not a cache entry.
	if err := s.client.Set(ctx, s.key, snapshot, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot to redis: %w", err)
	}
	return nil
}
