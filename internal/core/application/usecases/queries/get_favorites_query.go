package queries

import (
	"errors"

	"yumyum/internal/pkg/guard"
)

var ErrGetFavoritesQueryIsNotConstructed = errors.New(
	"GetFavoritesQuery must be created via NewGetFavoritesQuery constructor",
)

// GetFavoritesQuery retrieves the favorited item ids, most recently added
// first.
type GetFavoritesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFavoritesQuery creates a parameterless query for the favorites list.
func NewGetFavoritesQuery() GetFavoritesQuery {
	return GetFavoritesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFavoritesQuery) Validate() error {
	return q.guard.Validate(ErrGetFavoritesQueryIsNotConstructed)
}

// GetFavoritesQueryResponse is the favorites payload.
type GetFavoritesQueryResponse struct {
	ItemIDs []string `json:"itemIds"`
}
