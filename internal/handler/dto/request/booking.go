package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ExperienceID uuid.UUID `json:"experience_id" binding:"required"`
	Guests       int32     `json:"guests" binding:"required,min=1"`
}
