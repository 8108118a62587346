//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"experience-market/internal/domain/experience"
	"experience-market/internal/domain/hostprofile"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"
	commandsmock "experience-market/tests/mock/commands"
	queriesmock "experience-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExperienceCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	repo        *commandsmock.MockExperienceRepository
	profileRepo *commandsmock.MockHostProfileRepository
	expQueries  *queriesmock.MockExperienceQueries
	svc         commands.ExperienceCommands
}

func (s *ExperienceCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockExperienceRepository(s.mockCtrl)
	s.profileRepo = commandsmock.NewMockHostProfileRepository(s.mockCtrl)
	s.expQueries = queriesmock.NewMockExperienceQueries(s.mockCtrl)
	s.svc = commands.NewExperienceCommands(s.repo, s.profileRepo, s.expQueries)
}

func (s *ExperienceCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExperienceCommandsSuite(t *testing.T) {
	suite.Run(t, new(ExperienceCommandsTestSuite))
}

func completeProfile(userID uuid.UUID) *hostprofile.Profile {
	return &hostprofile.Profile{
		UserID:        userID,
		FullName:      "Maria Voss",
		Bio:           "Certified kayak guide",
		Phone:         "+49 170 0000000",
		IBAN:          "DE89370400440532013000",
		BankName:      "Sparkasse",
		AccountHolder: "Maria Voss",
	}
}

func (s *ExperienceCommandsTestSuite) params() commands.CreateExperienceParams {
	return commands.CreateExperienceParams{
		Title:      "Sunset kayak tour",
		PriceCents: 4000,
		Currency:   "EUR",
	}
}

func (s *ExperienceCommandsTestSuite) TestCreate_Success() {
	hostID := uuid.New()

	var created *experience.Experience
	s.profileRepo.EXPECT().FindByUserID(gomock.Any(), hostID).
		Return(completeProfile(hostID), nil)
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *experience.Experience) error {
			created = e
			return nil
		})
	s.expQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
			s.Equal(created.ID(), id)
			return &queries.ExperienceView{ID: id, HostID: hostID, Title: "Sunset kayak tour", PriceCents: 4000, Currency: "EUR"}, nil
		})

	view, err := s.svc.Create(context.Background(), hostID, s.params())
	s.Require().NoError(err)
	s.Equal(created.ID(), view.ID)
	s.Equal(hostID, view.HostID)
}

func (s *ExperienceCommandsTestSuite) TestCreate_IncompleteProfileListsMissingFields() {
	hostID := uuid.New()
	profile := completeProfile(hostID)
	profile.IBAN = ""
	profile.AccountHolder = "   " // whitespace-only counts as missing

	s.profileRepo.EXPECT().FindByUserID(gomock.Any(), hostID).Return(profile, nil)

	_, err := s.svc.Create(context.Background(), hostID, s.params())
	s.Require().Error(err)

	var incomplete *hostprofile.IncompleteProfileError
	s.Require().ErrorAs(err, &incomplete)
	s.Equal([]string{"iban", "account_holder"}, incomplete.MissingFields)
}

func (s *ExperienceCommandsTestSuite) TestCreate_NoProfileReportsAllFieldsMissing() {
	hostID := uuid.New()

	s.profileRepo.EXPECT().FindByUserID(gomock.Any(), hostID).
		Return(nil, infra.WrapRepoErr("host profile lookup", pgx.ErrNoRows))

	_, err := s.svc.Create(context.Background(), hostID, s.params())
	s.Require().Error(err)

	var incomplete *hostprofile.IncompleteProfileError
	s.Require().ErrorAs(err, &incomplete)
	s.Equal(hostprofile.RequiredFields, incomplete.MissingFields)
}

func (s *ExperienceCommandsTestSuite) TestCreate_ProfileLookupFailure() {
	hostID := uuid.New()

	s.profileRepo.EXPECT().FindByUserID(gomock.Any(), hostID).
		Return(nil, infra.WrapRepoErr("host profile lookup", errors.New("connection reset")))

	_, err := s.svc.Create(context.Background(), hostID, s.params())
	s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
}

func (s *ExperienceCommandsTestSuite) TestCreate_InvalidListingRejected() {
	hostID := uuid.New()

	s.profileRepo.EXPECT().FindByUserID(gomock.Any(), hostID).
		Return(completeProfile(hostID), nil).AnyTimes()

	cases := []struct {
		name   string
		mutate func(p *commands.CreateExperienceParams)
	}{
		{name: "empty title", mutate: func(p *commands.CreateExperienceParams) { p.Title = "" }},
		{name: "negative price", mutate: func(p *commands.CreateExperienceParams) { p.PriceCents = -100 }},
		{name: "bad currency", mutate: func(p *commands.CreateExperienceParams) { p.Currency = "EURO" }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			params := s.params()
			tc.mutate(&params)

			_, err := s.svc.Create(context.Background(), hostID, params)
			s.ErrorIs(err, errs.ErrDomainValidation)
		})
	}
}
