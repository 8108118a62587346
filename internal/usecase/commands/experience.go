package commands

import (
	"context"

	"experience-market/internal/domain/experience"
	"experience-market/internal/domain/hostprofile"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateExperienceParams struct {
	Title      string
	PriceCents int64
	Currency   string
}

type ExperienceCommands interface {
	Create(ctx context.Context, hostID uuid.UUID, params CreateExperienceParams) (*queries.ExperienceView, error)
}

type experienceCommandsImpl struct {
	repo              ExperienceRepository
	profileRepo       HostProfileRepository
	experienceQueries queries.ExperienceQueries
}

func NewExperienceCommands(
	repo ExperienceRepository,
	profileRepo HostProfileRepository,
	experienceQueries queries.ExperienceQueries,
) ExperienceCommands {
	return &experienceCommandsImpl{
		repo:              repo,
		profileRepo:       profileRepo,
		experienceQueries: experienceQueries,
	}
}

// Create publishes a host's listing. The payout profile must be complete
// first: an incomplete profile fails with the missing-field checklist, not a
// generic error.
func (e *experienceCommandsImpl) Create(ctx context.Context, hostID uuid.UUID, params CreateExperienceParams) (*queries.ExperienceView, error) {
	profile, err := e.profileRepo.FindByUserID(ctx, hostID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		profile = nil // no profile yet: the gate reports every field missing
	}

	if err := hostprofile.RequireComplete(profile); err != nil {
		return nil, err
	}

	entity, err := experience.NewExperience(hostID, params.Title, params.PriceCents, params.Currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := e.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return e.experienceQueries.GetByID(ctx, entity.ID())
}
