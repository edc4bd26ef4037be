// Package redis stores board documents as JSON strings in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/neon-boards/internal/adapters/documents"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "neon:documents:"
	connectWait   = 5 * time.Second
)

type Store struct {
	client *redis.Client
	prefix string
}

var _ ports.DocumentStore = (*Store)(nil)

// NewStore connects to redisURL and checks the server answers.
func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	store := NewStoreWithClient(redis.NewClient(opts))

	ctx, cancel := context.WithTimeout(context.Background(), connectWait)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return store, nil
}

func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client, prefix: defaultPrefix}
}

func (s *Store) key(q ports.DocumentQuery) string {
	return s.prefix + q.Collection + ":" + string(q.AccountID) + ":" + q.DocumentID
}

func (s *Store) Query(ctx context.Context, q ports.DocumentQuery) (domain.BoardCollection, error) {
	if err := documents.Validate(q); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, s.key(q)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document %s/%s: %w", q.AccountID, q.DocumentID, err)
	}

	return documents.Decode(data)
}

func (s *Store) Save(ctx context.Context, q ports.DocumentQuery, boards domain.BoardCollection) error {
	if err := documents.Validate(q); err != nil {
		return err
	}

	data, err := documents.Encode(boards)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(q), data, 0).Err(); err != nil {
		return fmt.Errorf("set document %s/%s: %w", q.AccountID, q.DocumentID, err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
