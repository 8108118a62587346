//go:build unit || e2e

package builder

import (
	"time"

	reqdto "experience-market/internal/handler/dto/request"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExperienceBuilder struct {
	ID         uuid.UUID
	HostID     uuid.UUID
	Title      string
	PriceCents int64
	Currency   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewExperienceBuilder() *ExperienceBuilder {
	now := time.Now()
	return &ExperienceBuilder{
		ID:         uuid.New(),
		HostID:     uuid.New(),
		Title:      "Sunset kayak tour",
		PriceCents: 4000,
		Currency:   "EUR",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (e *ExperienceBuilder) With(mutate func(*ExperienceBuilder)) *ExperienceBuilder {
	mutate(e)
	return e
}

func (e *ExperienceBuilder) BuildCreateRequestDTO() reqdto.CreateExperienceRequest {
	return reqdto.CreateExperienceRequest{
		Title:      e.Title,
		PriceCents: e.PriceCents,
		Currency:   e.Currency,
	}
}

func (e *ExperienceBuilder) BuildView() *queries.ExperienceView {
	return &queries.ExperienceView{
		ID:         e.ID,
		HostID:     e.HostID,
		Title:      e.Title,
		PriceCents: e.PriceCents,
		Currency:   e.Currency,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (e *ExperienceBuilder) BuildSnapshot() *commands.ExperienceSnapshot {
	return &commands.ExperienceSnapshot{
		ID:         e.ID,
		HostID:     e.HostID,
		Title:      e.Title,
		PriceCents: e.PriceCents,
		Currency:   e.Currency,
	}
}
