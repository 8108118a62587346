package queries

import (
	"context"

	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type ExperienceReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]ExperienceView, error)
}

type ExperienceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]ExperienceView, error)
}

type experienceQueriesImpl struct {
	readStore ExperienceReadStore
}

func NewExperienceQueries(readStore ExperienceReadStore) ExperienceQueries {
	return &experienceQueriesImpl{readStore: readStore}
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error) {
	view, err := q.readStore.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrExperienceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *experienceQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]ExperienceView, error) {
	views, err := q.readStore.ListByHost(ctx, hostID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
