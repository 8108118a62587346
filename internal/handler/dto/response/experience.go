package response

import (
	"time"

	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ExperienceResponse struct {
	ID         uuid.UUID `json:"id"`
	HostID     uuid.UUID `json:"host_id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromExperienceView(view *queries.ExperienceView) *ExperienceResponse {
	var resp ExperienceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
