//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"experience-market/internal/domain/settings"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	commandsmock "experience-market/tests/mock/commands"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *commandsmock.MockSettingsRepository
	svc      commands.SettingsCommands
}

func (s *SettingsCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockSettingsRepository(s.mockCtrl)
	s.svc = commands.NewSettingsCommands(s.repo)
}

func (s *SettingsCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsCommandsSuite(t *testing.T) {
	suite.Run(t, new(SettingsCommandsTestSuite))
}

func (s *SettingsCommandsTestSuite) TestSet_Success() {
	now := time.Now()
	s.repo.EXPECT().Set(gomock.Any(), settings.KeyCommissionRate, 0.2).
		Return(&settings.Setting{Key: settings.KeyCommissionRate, Value: 0.2, UpdatedAt: now}, nil)

	view, err := s.svc.Set(context.Background(), settings.KeyCommissionRate, 0.2)
	s.Require().NoError(err)
	s.Equal(settings.KeyCommissionRate, view.Key)
	s.Equal(0.2, view.Value)
	s.Equal(now, view.UpdatedAt)
}

func (s *SettingsCommandsTestSuite) TestSet_OutOfDomainRejectedBeforeWrite() {
	// No repo expectation: an invalid value must never reach the store.
	cases := []struct {
		name  string
		key   string
		value float64
	}{
		{name: "commission rate above one", key: settings.KeyCommissionRate, value: 1.5},
		{name: "commission rate negative", key: settings.KeyCommissionRate, value: -0.1},
		{name: "service fee negative", key: settings.KeyServiceFee, value: -50},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.svc.Set(context.Background(), tc.key, tc.value)
			s.ErrorIs(err, errs.ErrSettingOutOfRange)
		})
	}
}

func (s *SettingsCommandsTestSuite) TestSet_BoundaryValuesAccepted() {
	for _, value := range []float64{0, 1} {
		s.repo.EXPECT().Set(gomock.Any(), settings.KeyCommissionRate, value).
			Return(&settings.Setting{Key: settings.KeyCommissionRate, Value: value, UpdatedAt: time.Now()}, nil)

		view, err := s.svc.Set(context.Background(), settings.KeyCommissionRate, value)
		s.Require().NoError(err)
		s.Equal(value, view.Value)
	}
}

func (s *SettingsCommandsTestSuite) TestSet_UnknownKeyIsNotFound() {
	_, err := s.svc.Set(context.Background(), "max_refund_days", 30)
	s.ErrorIs(err, errs.ErrSettingNotFound)
}

func (s *SettingsCommandsTestSuite) TestSet_MissingRowIsNotFound() {
	// Known key whose seeded row is gone: still a not-found, never an insert.
	s.repo.EXPECT().Set(gomock.Any(), settings.KeyServiceFee, 300.0).
		Return(nil, infra.WrapRepoErr("setting update", pgx.ErrNoRows))

	_, err := s.svc.Set(context.Background(), settings.KeyServiceFee, 300)
	s.ErrorIs(err, errs.ErrSettingNotFound)
}
