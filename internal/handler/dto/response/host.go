package response

import (
	"time"

	"experience-market/internal/domain/hostprofile"

	"github.com/jinzhu/copier"
)

type HostProfileResponse struct {
	FullName      string    `json:"full_name"`
	Bio           string    `json:"bio"`
	Phone         string    `json:"phone"`
	IBAN          string    `json:"iban"`
	BankName      string    `json:"bank_name"`
	AccountHolder string    `json:"account_holder"`
	UpdatedAt     time.Time `json:"updated_at"`

	Eligibility EligibilityResponse `json:"eligibility"`
}

type EligibilityResponse struct {
	IsComplete    bool     `json:"is_complete"`
	MissingFields []string `json:"missing_fields"`
}

func FromHostProfile(p *hostprofile.Profile, completeness hostprofile.Completeness) *HostProfileResponse {
	var resp HostProfileResponse
	_ = copier.Copy(&resp, p)
	resp.Eligibility = FromCompleteness(completeness)
	return &resp
}

func FromCompleteness(c hostprofile.Completeness) EligibilityResponse {
	missing := c.MissingFields
	if missing == nil {
		missing = []string{}
	}
	return EligibilityResponse{
		IsComplete:    c.IsComplete,
		MissingFields: missing,
	}
}
