package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"festquote/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionPrefix    = "quote:session:"
	submitLockPrefix = "quote:submit:"
	maxUpdateRetries = 5
)

// Deletes the lock only if it still holds our token.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore saves sessions as JSON with a sliding TTL.
type RedisStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewRedisStore(client *redis.Client, ttl, lockTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, lockTTL: lockTTL}
}

func (r *RedisStore) Create(ctx context.Context, s *models.QuoteSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal quote session: %w", err)
	}
	if err := r.client.Set(ctx, sessionPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store quote session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*models.QuoteSession, error) {
	key := sessionPrefix + id
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read quote session: %w", err)
	}
	var s models.QuoteSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse quote session: %w", err)
	}
	r.client.Expire(ctx, key, r.ttl)
	return &s, nil
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(*models.QuoteSession) error) (*models.QuoteSession, error) {
	key := sessionPrefix + id
	var updated *models.QuoteSession

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		var s models.QuoteSession
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to parse quote session: %w", err)
		}
		if err := fn(&s); err != nil {
			return err
		}
		out, err := json.Marshal(&s)
		if err != nil {
			return fmt.Errorf("failed to marshal quote session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		if err == nil {
			updated = &s
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("quote session %s: too many concurrent updates", id)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete quote session: %w", err)
	}
	return nil
}

func (r *RedisStore) AcquireSubmit(ctx context.Context, id string) (func(), error) {
	key := submitLockPrefix + id
	token := uuid.New().String()
	ok, err := r.client.SetNX(ctx, key, token, r.lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !ok {
		return nil, ErrSubmitInFlight
	}
	return func() {
		releaseLock.Run(context.Background(), r.client, []string{key}, token)
	}, nil
}
