package commands

import (
	"context"

	"experience-market/internal/domain/hostprofile"
	"experience-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type UpdateHostProfileParams struct {
	FullName      string
	Bio           string
	Phone         string
	IBAN          string
	BankName      string
	AccountHolder string
}

type HostProfileCommands interface {
	Update(ctx context.Context, userID uuid.UUID, params UpdateHostProfileParams) (*hostprofile.Profile, hostprofile.Completeness, error)
}

type hostProfileCommandsImpl struct {
	repo HostProfileRepository
}

func NewHostProfileCommands(repo HostProfileRepository) HostProfileCommands {
	return &hostProfileCommandsImpl{repo: repo}
}

// Update upserts the payout profile and returns the derived completeness so
// clients can show the checklist straight from the write response. The upsert
// refreshes updated_at, keeping profile edits on a single audit path.
func (h *hostProfileCommandsImpl) Update(ctx context.Context, userID uuid.UUID, params UpdateHostProfileParams) (*hostprofile.Profile, hostprofile.Completeness, error) {
	profile := &hostprofile.Profile{
		UserID:        userID,
		FullName:      params.FullName,
		Bio:           params.Bio,
		Phone:         params.Phone,
		IBAN:          params.IBAN,
		BankName:      params.BankName,
		AccountHolder: params.AccountHolder,
	}

	if err := h.repo.Upsert(ctx, profile); err != nil {
		return nil, hostprofile.Completeness{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return profile, hostprofile.Evaluate(profile), nil
}
