//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	commandsmock "experience-market/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavoritesCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *commandsmock.MockFavoritesRepository
	svc      commands.FavoritesCommands
}

func (s *FavoritesCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockFavoritesRepository(s.mockCtrl)
	s.svc = commands.NewFavoritesCommands(s.repo)
}

func (s *FavoritesCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFavoritesCommandsSuite(t *testing.T) {
	suite.Run(t, new(FavoritesCommandsTestSuite))
}

func (s *FavoritesCommandsTestSuite) TestMerge_UnionsLocalIntoServerSet() {
	userID := uuid.New()
	a, b := uuid.New(), uuid.New()
	serverOnly := uuid.New()

	s.repo.EXPECT().Merge(gomock.Any(), userID, []uuid.UUID{a, b}).Return(nil)
	s.repo.EXPECT().ListByUser(gomock.Any(), userID).
		Return([]uuid.UUID{serverOnly, a, b}, nil)

	result, err := s.svc.Merge(context.Background(), userID, []uuid.UUID{a, b})
	s.Require().NoError(err)
	s.ElementsMatch([]uuid.UUID{serverOnly, a, b}, result.Favorites)
	s.True(result.Cleared)
}

func (s *FavoritesCommandsTestSuite) TestMerge_DropsDuplicatesAndNilIDs() {
	userID := uuid.New()
	a, b := uuid.New(), uuid.New()

	s.repo.EXPECT().Merge(gomock.Any(), userID, []uuid.UUID{a, b}).Return(nil)
	s.repo.EXPECT().ListByUser(gomock.Any(), userID).Return([]uuid.UUID{a, b}, nil)

	result, err := s.svc.Merge(context.Background(), userID, []uuid.UUID{a, uuid.Nil, a, b, b})
	s.Require().NoError(err)
	s.True(result.Cleared)
}

func (s *FavoritesCommandsTestSuite) TestMerge_EmptyLocalSetSkipsWrite() {
	userID := uuid.New()
	existing := uuid.New()

	// No Merge expectation: nothing to write when the local set is empty.
	s.repo.EXPECT().ListByUser(gomock.Any(), userID).Return([]uuid.UUID{existing}, nil)

	result, err := s.svc.Merge(context.Background(), userID, nil)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{existing}, result.Favorites)
	s.True(result.Cleared)
}

func (s *FavoritesCommandsTestSuite) TestMerge_UnknownExperienceIsNotFound() {
	userID := uuid.New()
	ghost := uuid.New()

	fkErr := &pgconn.PgError{Code: "23503"}
	s.repo.EXPECT().Merge(gomock.Any(), userID, []uuid.UUID{ghost}).
		Return(infra.WrapRepoErr("favorites merge", fkErr))

	result, err := s.svc.Merge(context.Background(), userID, []uuid.UUID{ghost})
	s.Nil(result)
	s.ErrorIs(err, errs.ErrExperienceNotFound)
}

func (s *FavoritesCommandsTestSuite) TestMerge_RepoFailureKeepsLocalSet() {
	userID := uuid.New()
	a := uuid.New()

	s.repo.EXPECT().Merge(gomock.Any(), userID, []uuid.UUID{a}).
		Return(infra.WrapRepoErr("favorites merge", errors.New("connection reset")))

	result, err := s.svc.Merge(context.Background(), userID, []uuid.UUID{a})
	s.Nil(result)
	s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
}
