// Package sessionrepo persists the customer session as a JSON document.
package sessionrepo

import (
	"context"
	"encoding/json"
	"time"

	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/model/session"

	"gorm.io/gorm"
)

// sessionDTO is the persisted shape of the session document.
type sessionDTO struct {
	Email      string    `json:"email"`
	SignedInAt time.Time `json:"signedInAt"`
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormSessionRepository implements SessionRepository on the document store.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the session, or nil when nobody is signed in. A missing or
// unreadable document means signed out.
func (r *GormSessionRepository) Get(ctx context.Context) (*session.Session, error) {
	body, err := documentstore.Load(ctx, r.db, documentstore.SessionKey)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var dto sessionDTO
	if json.Unmarshal(body, &dto) != nil {
		return nil, nil
	}

	return session.RestoreSession(dto.Email, dto.SignedInAt), nil
}

// Save persists the session, replacing the previous document.
func (r *GormSessionRepository) Save(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(sessionDTO{
		Email:      aggregate.Email(),
		SignedInAt: aggregate.SignedInAt(),
	})
	if err != nil {
		return err
	}

	if err = documentstore.Save(ctx, r.db, documentstore.SessionKey, body); err != nil {
		return err
	}

	r.tracker.TrackAggregate(documentstore.SessionKey, aggregate)
	return nil
}

// Clear removes the stored session.
func (r *GormSessionRepository) Clear(ctx context.Context) error {
	return documentstore.Delete(ctx, r.db, documentstore.SessionKey)
}
