package queries

import (
	"context"

	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
)

type SettingsReadStore interface {
	Get(ctx context.Context, key string) (*SettingView, error)
	List(ctx context.Context) ([]SettingView, error)
}

type SettingsQueries interface {
	Get(ctx context.Context, key string) (*SettingView, error)
	List(ctx context.Context) ([]SettingView, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

func (q *settingsQueriesImpl) Get(ctx context.Context, key string) (*SettingView, error) {
	view, err := q.readStore.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSettingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *settingsQueriesImpl) List(ctx context.Context) ([]SettingView, error) {
	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
