package queries

import (
	"errors"
	"time"

	"yumyum/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery retrieves the signed-in customer, if any.
type GetSessionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates a parameterless query for the session.
func NewGetSessionQuery() GetSessionQuery {
	return GetSessionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// GetSessionQueryResponse is the session payload. SignedIn false means the
// other fields are zero.
type GetSessionQueryResponse struct {
	SignedIn   bool      `json:"signedIn"`
	Email      string    `json:"email,omitempty"`
	SignedInAt time.Time `json:"signedInAt,omitzero"`
}
