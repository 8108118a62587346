package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Settings errors
	ErrSettingNotFound   = errors.New("setting not found")
	ErrSettingOutOfRange = errors.New("setting value out of range")

	// Settlement errors
	ErrSettlementConfig = errors.New("settlement configuration missing")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrExperienceNotFound   = errors.New("experience not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// Payment gateway errors
	ErrGatewayDegraded = errors.New("payment gateway degraded")
	ErrGatewayCharge   = errors.New("payment gateway charge failed")

	// Host eligibility errors
	ErrIncompleteProfile = errors.New("host profile incomplete")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
