//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"experience-market/internal/domain/booking"
	"experience-market/internal/domain/settings"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"
	commandsmock "experience-market/tests/mock/commands"
	queriesmock "experience-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeTx satisfies pgx.Tx for usecases that only Begin/Commit/Rollback and
// pass the tx through to repository mocks.
type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(_ context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row        { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakeDatabase struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDatabase) Begin(_ context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func (d *fakeDatabase) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (d *fakeDatabase) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}
func (d *fakeDatabase) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { return nil }

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	bookingRepo  *commandsmock.MockBookingRepository
	expRepo      *commandsmock.MockExperienceRepository
	settingsRepo *commandsmock.MockSettingsRepository
	gateway      *commandsmock.MockPaymentGateway
	reporter     *commandsmock.MockPurchaseReporter
	bookingQrs   *queriesmock.MockBookingQueries
	tx           *fakeTx
	database     *fakeDatabase
	checkout     commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.expRepo = commandsmock.NewMockExperienceRepository(s.mockCtrl)
	s.settingsRepo = commandsmock.NewMockSettingsRepository(s.mockCtrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.reporter = commandsmock.NewMockPurchaseReporter(s.mockCtrl)
	s.bookingQrs = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.tx = &fakeTx{}
	s.database = &fakeDatabase{tx: s.tx}
	s.checkout = commands.NewCheckoutCommands(
		s.bookingRepo, s.expRepo, s.settingsRepo, s.gateway, s.reporter, s.bookingQrs, s.database,
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) snapshot() settings.Snapshot {
	return settings.Snapshot{
		settings.KeyCommissionRate: 0.15,
		settings.KeyServiceFee:     250,
	}
}

func (s *CheckoutCommandsTestSuite) experienceSnapshot() *commands.ExperienceSnapshot {
	return &commands.ExperienceSnapshot{
		ID:         uuid.New(),
		HostID:     uuid.New(),
		Title:      "Sunset kayak tour",
		PriceCents: 4000,
		Currency:   "EUR",
	}
}

func (s *CheckoutCommandsTestSuite) params(expID uuid.UUID) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ExperienceID: expID,
		UserID:       uuid.New(),
		Guests:       2,
	}
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_Success() {
	expSnap := s.experienceSnapshot()
	params := s.params(expSnap.ID)

	var created *booking.Booking
	s.expRepo.EXPECT().FindByID(gomock.Any(), expSnap.ID).Return(expSnap, nil)
	s.settingsRepo.EXPECT().
		Snapshot(gomock.Any(), s.tx, settings.KeyCommissionRate, settings.KeyServiceFee).
		Return(s.snapshot(), nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
			created = b
			return nil
		})
	s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order commands.ChargeOrder) (*commands.ChargeReceipt, error) {
			s.Equal(int64(8000), order.AmountCents)
			s.Equal("EUR", order.Currency)
			return &commands.ChargeReceipt{TransactionID: "txn_abc", AmountCents: order.AmountCents, Currency: order.Currency}, nil
		})
	s.bookingRepo.EXPECT().MarkPaid(gomock.Any(), s.database, gomock.Any(), "txn_abc").
		DoAndReturn(func(_ context.Context, _ any, id uuid.UUID, _ string) error {
			s.Equal(created.ID(), id)
			return nil
		})
	view := &queries.BookingView{
		ExperienceID: expSnap.ID,
		Guests:       2,
		Currency:     "EUR",
		TotalCents:   8000,
		Status:       "paid",
	}
	s.bookingQrs.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			v := *view
			v.ID = id
			return &v, nil
		})

	reported := make(chan commands.PurchaseEvent, 1)
	s.reporter.EXPECT().Report(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ev commands.PurchaseEvent) { reported <- ev })

	got, err := s.checkout.CreateBooking(context.Background(), params)
	s.Require().NoError(err)
	s.Equal("paid", got.Status)
	s.Equal(created.ID(), got.ID)

	// Commission frozen at creation: 8000 × 0.15 + 250.
	s.Equal(int64(1450), created.Commission().Cents())
	s.True(s.tx.committed)

	select {
	case ev := <-reported:
		s.Equal("txn_abc", ev.TransactionID)
		s.InDelta(80.0, ev.Value, 0.001)
		s.Require().Len(ev.Items, 1)
		s.Equal(expSnap.ID.String(), ev.Items[0].ItemID)
		s.Equal(int32(2), ev.Items[0].Quantity)
	case <-time.After(2 * time.Second):
		s.Fail("purchase event was not reported")
	}
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_ChargeFailureCancelsBooking() {
	expSnap := s.experienceSnapshot()
	params := s.params(expSnap.ID)

	var createdID uuid.UUID
	s.expRepo.EXPECT().FindByID(gomock.Any(), expSnap.ID).Return(expSnap, nil)
	s.settingsRepo.EXPECT().Snapshot(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).
		Return(s.snapshot(), nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
			createdID = b.ID()
			return nil
		})
	s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("card declined"))
	// The pending booking is released; MarkPaid must never run.
	s.bookingRepo.EXPECT().Cancel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) error {
			s.Equal(createdID, id)
			return nil
		})

	got, err := s.checkout.CreateBooking(context.Background(), params)
	s.Nil(got)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrGatewayCharge)
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_DegradedGatewayPassesThrough() {
	expSnap := s.experienceSnapshot()
	params := s.params(expSnap.ID)

	s.expRepo.EXPECT().FindByID(gomock.Any(), expSnap.ID).Return(expSnap, nil)
	s.settingsRepo.EXPECT().Snapshot(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).
		Return(s.snapshot(), nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), s.tx, gomock.Any()).Return(nil)
	s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrGatewayDegraded)
	s.bookingRepo.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.checkout.CreateBooking(context.Background(), params)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrGatewayDegraded)
	s.NotErrorIs(err, errs.ErrGatewayCharge)
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_ExperienceNotFound() {
	params := s.params(uuid.New())

	s.expRepo.EXPECT().FindByID(gomock.Any(), params.ExperienceID).
		Return(nil, infra.WrapRepoErr("experience lookup", pgx.ErrNoRows))

	_, err := s.checkout.CreateBooking(context.Background(), params)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrExperienceNotFound)
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_MissingSettlementConfig() {
	expSnap := s.experienceSnapshot()
	params := s.params(expSnap.ID)

	s.expRepo.EXPECT().FindByID(gomock.Any(), expSnap.ID).Return(expSnap, nil)
	// commission_rate present but service_fee missing: checkout must abort
	// instead of defaulting the fee to zero.
	s.settingsRepo.EXPECT().Snapshot(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).
		Return(settings.Snapshot{settings.KeyCommissionRate: 0.15}, nil)

	_, err := s.checkout.CreateBooking(context.Background(), params)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrSettlementConfig)
	s.False(s.tx.committed)
	s.True(s.tx.rolledBack)
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_InvalidGuestCount() {
	expSnap := s.experienceSnapshot()
	params := s.params(expSnap.ID)
	params.Guests = 0

	s.expRepo.EXPECT().FindByID(gomock.Any(), expSnap.ID).Return(expSnap, nil)
	s.settingsRepo.EXPECT().Snapshot(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).
		Return(s.snapshot(), nil)

	_, err := s.checkout.CreateBooking(context.Background(), params)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrDomainValidation)
	s.False(s.tx.committed)
}

func (s *CheckoutCommandsTestSuite) TestCreateBooking_PaidTransitionFailureSurfaces() {
	expSnap := s.experienceSnapshot()
	params := s.params(expSnap.ID)

	s.expRepo.EXPECT().FindByID(gomock.Any(), expSnap.ID).Return(expSnap, nil)
	s.settingsRepo.EXPECT().Snapshot(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).
		Return(s.snapshot(), nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), s.tx, gomock.Any()).Return(nil)
	s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&commands.ChargeReceipt{TransactionID: "txn_xyz", AmountCents: 8000, Currency: "EUR"}, nil)
	s.bookingRepo.EXPECT().MarkPaid(gomock.Any(), s.database, gomock.Any(), "txn_xyz").
		Return(errors.New("connection reset"))

	_, err := s.checkout.CreateBooking(context.Background(), params)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
}
