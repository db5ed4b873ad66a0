package ports

import (
	"context"

	"yumyum/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for the customer
// session.
type SessionRepository interface {
	// Get retrieves the current session, or nil when nobody is signed in.
	Get(ctx context.Context) (*session.Session, error)

	// Save persists the session.
	Save(ctx context.Context, aggregate *session.Session) error

	// Clear removes the stored session. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context) error
}
