package contract

import (
	"context"

	"beauty-advisor-be/pkg/qualification"
)

// ISessionRepository defines qualification session storage operations.
// Implementations must be effectively atomic per session key: Update runs a
// read-modify-write guarded against concurrent writers for the same id
// (mutex in-memory, optimistic WATCH/MULTI on Redis) so a double-submitted
// step cannot lose an answer.
type ISessionRepository interface {
	Get(ctx context.Context, sessionId string) (*qualification.Session, error)
	Save(ctx context.Context, session *qualification.Session) error
	Delete(ctx context.Context, sessionId string) error

	// Update applies fn to the current session state and persists the result
	// atomically. fn receiving nil means the session does not exist; the
	// error fn returns aborts the write and is surfaced unchanged.
	Update(ctx context.Context, sessionId string, fn func(*qualification.Session) error) error
}
