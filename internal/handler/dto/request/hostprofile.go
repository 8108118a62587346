package request

// UpdateHostProfileRequest holds the payout profile fields. Partial updates
// are allowed; fields left blank simply stay missing on the eligibility
// checklist.
type UpdateHostProfileRequest struct {
	FullName      string `json:"full_name"`
	Bio           string `json:"bio"`
	Phone         string `json:"phone"`
	IBAN          string `json:"iban"`
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
}
