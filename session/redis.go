package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hedibld92/margueritecookie/apperr"
)

// RedisStore keeps sessions in redis as JSON values under session:<id> keys,
// expiring after TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("Failed to load session", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, apperr.Storage("Failed to decode session", err)
	}
	return &sess, nil
}

func (r *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return apperr.Storage("Failed to encode session", err)
	}
	if err := r.client.Set(ctx, sessionKey(sess.ID), data, TTL).Err(); err != nil {
		return apperr.Storage("Failed to save session", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return apperr.Storage("Failed to delete session", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
