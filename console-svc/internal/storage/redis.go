package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"overcooked-console/console-svc/internal/session"

	"github.com/redis/go-redis/v9"
)

type SessionStore struct {
	Client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{Client: client}
}

func (s *SessionStore) SessionKey(id string) string {
	return "console:session:" + id
}

func (s *SessionStore) Save(ctx context.Context, sess session.Context, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.Client.Set(ctx, s.SessionKey(sess.ID), payload, ttl).Err()
}

func (s *SessionStore) Load(ctx context.Context, id string) (session.Context, error) {
	payload, err := s.Client.Get(ctx, s.SessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Context{}, session.ErrNotFound
	}
	if err != nil {
		return session.Context{}, err
	}

	var sess session.Context
	if err := json.Unmarshal(payload, &sess); err != nil {
		return session.Context{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.SessionKey(id)).Err()
}

var _ session.Store = (*SessionStore)(nil)
