package response

import (
	"github.com/google/uuid"
)

type FavoritesResponse struct {
	IDs []uuid.UUID `json:"ids"`
}

// MergeFavoritesResponse reports the merged set. LocalCleared tells the
// client its anonymous local set has been absorbed and can be dropped.
type MergeFavoritesResponse struct {
	Favorites    []uuid.UUID `json:"favorites"`
	LocalCleared bool        `json:"local_cleared"`
}
