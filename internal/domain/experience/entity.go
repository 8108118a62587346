package experience

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

// Experience is a host's bookable listing. Only the fields the settlement
// core consumes live here; media, descriptions and search metadata belong to
// the catalog surface.
type Experience struct {
	id         uuid.UUID
	hostID     uuid.UUID
	title      string
	priceCents int64
	currency   string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewExperience(hostID uuid.UUID, title string, priceCents int64, currency string) (*Experience, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return &Experience{
		id:         uuid.New(),
		hostID:     hostID,
		title:      title,
		priceCents: priceCents,
		currency:   currency,
	}, nil
}

func ReconstructExperience(id, hostID uuid.UUID, title string, priceCents int64, currency string, createdAt, updatedAt time.Time) *Experience {
	return &Experience{
		id:         id,
		hostID:     hostID,
		title:      title,
		priceCents: priceCents,
		currency:   currency,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (e *Experience) ID() uuid.UUID        { return e.id }
func (e *Experience) HostID() uuid.UUID    { return e.hostID }
func (e *Experience) Title() string        { return e.title }
func (e *Experience) PriceCents() int64    { return e.priceCents }
func (e *Experience) Currency() string     { return e.currency }
func (e *Experience) CreatedAt() time.Time { return e.createdAt }
func (e *Experience) UpdatedAt() time.Time { return e.updatedAt }
