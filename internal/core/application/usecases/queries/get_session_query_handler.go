package queries

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// GetSessionQueryHandler retrieves the session document from the database. A
// missing or unreadable document answers signed out.
type GetSessionQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionQueryHandler creates a handler for session queries.
func NewGetSessionQueryHandler(db *gorm.DB) GetSessionQueryHandler {
	return GetSessionQueryHandler{db: db}
}

// Handle executes the session query.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	body, err := loadDocument(ctx, h.db, sessionDocumentKey)
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	var document struct {
		Email      string    `json:"email"`
		SignedInAt time.Time `json:"signedInAt"`
	}
	if body == nil || json.Unmarshal(body, &document) != nil || document.Email == "" {
		return GetSessionQueryResponse{}, nil
	}

	return GetSessionQueryResponse{
		SignedIn:   true,
		Email:      document.Email,
		SignedInAt: document.SignedInAt,
	}, nil
}
