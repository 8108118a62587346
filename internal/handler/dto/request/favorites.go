package request

import (
	"github.com/google/uuid"
)

// MergeFavoritesRequest is the anonymous device-local favorites set the
// client wants absorbed into its account. An empty set is a valid merge; it
// just returns the account favorites.
type MergeFavoritesRequest struct {
	IDs []uuid.UUID `json:"ids"`
}
