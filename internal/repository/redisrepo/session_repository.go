// Package redisrepo backs the qualification session store with Redis so
// multiple worker processes can share sessions.
package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"beauty-advisor-be/internal/repository/contract"
	"beauty-advisor-be/pkg/qualification"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "advisor:qualification:"

// maxRetries bounds the optimistic-concurrency retry loop in Update.
const maxRetries = 5

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(sessionId string) string {
	return keyPrefix + sessionId
}

func (r *SessionRepository) Get(ctx context.Context, sessionId string) (*qualification.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(sessionId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session %s: %w", sessionId, err)
	}

	var session qualification.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionId, err)
	}
	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *qualification.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.SessionId, err)
	}
	if err := r.client.Set(ctx, sessionKey(session.SessionId), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis save session %s: %w", session.SessionId, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionId string) error {
	if err := r.client.Del(ctx, sessionKey(sessionId)).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", sessionId, err)
	}
	return nil
}

// Update runs fn inside a WATCH/MULTI transaction: concurrent writers for
// the same session key (a double-submitted step) force a retry instead of
// losing an answer.
func (r *SessionRepository) Update(ctx context.Context, sessionId string, fn func(*qualification.Session) error) error {
	key := sessionKey(sessionId)

	txn := func(tx *redis.Tx) error {
		var session *qualification.Session
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			session = nil
		case err != nil:
			return fmt.Errorf("redis get session %s: %w", sessionId, err)
		default:
			session = &qualification.Session{}
			if err := json.Unmarshal(raw, session); err != nil {
				return fmt.Errorf("decode session %s: %w", sessionId, err)
			}
		}

		if err := fn(session); err != nil {
			return err
		}
		if session == nil {
			return nil
		}

		encoded, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("encode session %s: %w", sessionId, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis update session %s: too many concurrent writes", sessionId)
}
