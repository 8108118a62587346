package queries

import (
	"context"

	"experience-market/internal/domain/hostprofile"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type HostProfileReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*hostprofile.Profile, error)
}

type HostProfileQueries interface {
	// Eligibility derives completeness; a missing profile is simply a fully
	// incomplete one, not an error.
	Eligibility(ctx context.Context, userID uuid.UUID) (hostprofile.Completeness, error)
}

type hostProfileQueriesImpl struct {
	readStore HostProfileReadStore
}

func NewHostProfileQueries(readStore HostProfileReadStore) HostProfileQueries {
	return &hostProfileQueriesImpl{readStore: readStore}
}

func (q *hostProfileQueriesImpl) Eligibility(ctx context.Context, userID uuid.UUID) (hostprofile.Completeness, error) {
	profile, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return hostprofile.Evaluate(nil), nil
		}
		return hostprofile.Completeness{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return hostprofile.Evaluate(profile), nil
}
