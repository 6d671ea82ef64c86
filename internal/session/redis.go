// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cardify/internal/config"
	"github.com/MKhiriev/cardify/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a [Store] backed by Redis. Each session is a JSON string
// under prefix+id whose Redis TTL follows the session expiry.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisClient opens a client for the configured Redis instance.
func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore returns a store using client. An empty prefix defaults to
// "session:".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = config.DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Load implements [Store].
func (s *RedisStore) Load(ctx context.Context, id string) (models.Session, error) {
	if id == "" {
		return models.Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrNotFound
		}
		return models.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess models.Session
	if err = json.Unmarshal(data, &sess); err != nil {
		return models.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		if err = s.Delete(ctx, id); err != nil {
			return models.Session{}, fmt.Errorf("cleanup expired session: %w", err)
		}
		return models.Session{}, ErrNotFound
	}

	sess.ID = id
	return sess, nil
}

// Save implements [Store].
func (s *RedisStore) Save(ctx context.Context, id string, sess models.Session) error {
	if id == "" {
		return ErrEmptyID
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err = s.client.Set(ctx, s.prefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete implements [Store].
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if err := s.client.Del(ctx, s.prefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
