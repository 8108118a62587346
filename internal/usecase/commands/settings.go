package commands

import (
	"context"
	"errors"

	"experience-market/internal/domain/settings"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/queries"
)

type SettingsCommands interface {
	// Set updates one commerce setting. Authorization (admin capability) is
	// enforced at the route; the command enforces the value domain.
	Set(ctx context.Context, key string, value float64) (*queries.SettingView, error)
}

type settingsCommandsImpl struct {
	repo SettingsRepository
}

func NewSettingsCommands(repo SettingsRepository) SettingsCommands {
	return &settingsCommandsImpl{repo: repo}
}

func (s *settingsCommandsImpl) Set(ctx context.Context, key string, value float64) (*queries.SettingView, error) {
	// Reject out-of-domain values before any write touches the row.
	if err := settings.Validate(key, value); err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownKey):
			return nil, errs.ErrSettingNotFound
		case errors.Is(err, settings.ErrOutOfDomain):
			return nil, errs.ErrSettingOutOfRange
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	updated, err := s.repo.Set(ctx, key, value)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSettingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.SettingView{
		Key:       updated.Key,
		Value:     updated.Value,
		UpdatedAt: updated.UpdatedAt,
	}, nil
}
