package memory

import (
	"context"
	"sync"
	"time"

	"beauty-advisor-be/internal/repository/contract"
	"beauty-advisor-be/pkg/qualification"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the in-process session store. Sessions expire after
// an hour of inactivity; the flow layer treats an expired session as
// "please restart qualification".
type SessionRepository struct {
	cache *cache.Cache
	mu    sync.Mutex // serializes Update's read-modify-write
}

var _ contract.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(ttl, purgeInterval time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	if purgeInterval <= 0 {
		purgeInterval = 10 * time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, purgeInterval),
	}
}

// Get returns a clone, never the stored pointer: a reader iterating the
// Answers map must not share it with a concurrent Update for the same id.
func (r *SessionRepository) Get(_ context.Context, sessionId string) (*qualification.Session, error) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*qualification.Session).Clone(), nil
	}
	return nil, nil
}

func (r *SessionRepository) Save(_ context.Context, session *qualification.Session) error {
	r.cache.Set(session.SessionId, session.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionId string) error {
	r.cache.Delete(sessionId)
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, sessionId string, fn func(*qualification.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.Get(ctx, sessionId)
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	return r.Save(ctx, session)
}
