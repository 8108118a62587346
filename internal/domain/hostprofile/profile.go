package hostprofile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequiredFields are the payout-critical profile fields, in the stable order
// clients render the checklist in.
var RequiredFields = []string{
	"full_name",
	"bio",
	"phone",
	"iban",
	"bank_name",
	"account_holder",
}

type Profile struct {
	UserID        uuid.UUID
	FullName      string
	Bio           string
	Phone         string
	IBAN          string
	BankName      string
	AccountHolder string
	UpdatedAt     time.Time
}

type Completeness struct {
	IsComplete    bool
	MissingFields []string
}

// Evaluate derives completeness; it is never stored. A nil profile reports
// every required field as missing.
func Evaluate(p *Profile) Completeness {
	if p == nil {
		missing := make([]string, len(RequiredFields))
		copy(missing, RequiredFields)
		return Completeness{IsComplete: false, MissingFields: missing}
	}

	values := map[string]string{
		"full_name":      p.FullName,
		"bio":            p.Bio,
		"phone":          p.Phone,
		"iban":           p.IBAN,
		"bank_name":      p.BankName,
		"account_holder": p.AccountHolder,
	}

	var missing []string
	for _, field := range RequiredFields {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, field)
		}
	}

	return Completeness{
		IsComplete:    len(missing) == 0,
		MissingFields: missing,
	}
}

// IncompleteProfileError carries the missing-field list so callers can render
// an actionable checklist instead of a generic failure.
type IncompleteProfileError struct {
	MissingFields []string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("host profile incomplete: missing %s", strings.Join(e.MissingFields, ", "))
}

// RequireComplete gates host-only actions (experience creation, host-side
// booking mutations) behind a complete payout profile.
func RequireComplete(p *Profile) error {
	result := Evaluate(p)
	if result.IsComplete {
		return nil
	}
	return &IncompleteProfileError{MissingFields: result.MissingFields}
}
