package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"experience-market/internal/domain/booking"
	"experience-market/internal/domain/settings"
	"experience-market/internal/infra"
	"experience-market/internal/infra/db"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateBookingParams struct {
	ExperienceID uuid.UUID
	UserID       uuid.UUID
	Guests       int32
	ReferralCode *string
}

type CheckoutCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
}

type checkoutCommandsImpl struct {
	bookingRepo    BookingRepository
	experienceRepo ExperienceRepository
	settingsRepo   SettingsRepository
	gateway        PaymentGateway
	reporter       PurchaseReporter
	bookingQueries queries.BookingQueries
	db             db.Database
}

func NewCheckoutCommands(
	bookingRepo BookingRepository,
	experienceRepo ExperienceRepository,
	settingsRepo SettingsRepository,
	gateway PaymentGateway,
	reporter PurchaseReporter,
	bookingQueries queries.BookingQueries,
	database db.Database,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		settingsRepo:   settingsRepo,
		gateway:        gateway,
		reporter:       reporter,
		bookingQueries: bookingQueries,
		db:             database,
	}
}

// CreateBooking runs the settlement flow: settings snapshot → commission
// freeze → pending booking row (one transaction), then the gateway charge,
// then pending→paid with the receipt. A failed or aborted charge can never
// leave the booking paid, and the purchase report runs after the fact without
// blocking the confirmation.
func (c *checkoutCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	expSnap, err := c.experienceRepo.FindByID(ctx, params.ExperienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrExperienceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := c.createPendingBooking(ctx, expSnap, params)
	if err != nil {
		return nil, err
	}

	receipt, err := c.gateway.Charge(ctx, ChargeOrder{
		BookingID:   entity.ID(),
		AmountCents: entity.Total().Cents(),
		Currency:    entity.Currency(),
		Description: fmt.Sprintf("booking %s: %s", entity.ID(), expSnap.Title),
	})
	if err != nil {
		c.cancelAfterFailedCharge(ctx, entity.ID())
		if errors.Is(err, errs.ErrGatewayDegraded) {
			return nil, errs.ErrGatewayDegraded
		}
		return nil, errs.Mark(err, errs.ErrGatewayCharge)
	}

	if err := c.bookingRepo.MarkPaid(ctx, c.db, entity.ID(), receipt.TransactionID); err != nil {
		// The charge went through but the paid transition did not; surface the
		// receipt so operators can reconcile.
		slog.Error("booking paid transition failed after successful charge",
			"booking_id", entity.ID(), "gateway_txn_id", receipt.TransactionID, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Fire-and-forget: the purchase is complete, reporting must not block or
	// fail the confirmation. WithoutCancel survives the request context.
	go c.reporter.Report(context.WithoutCancel(ctx), purchaseEventFor(view, expSnap, receipt))

	return view, nil
}

// createPendingBooking takes the settings snapshot and writes the booking row
// in one transaction, so the frozen commission and the row cannot disagree.
func (c *checkoutCommandsImpl) createPendingBooking(
	ctx context.Context,
	expSnap *ExperienceSnapshot,
	params CreateBookingParams,
) (*booking.Booking, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr.Error())
		}
	}()

	snap, err := c.settingsRepo.Snapshot(ctx, tx, settings.KeyCommissionRate, settings.KeyServiceFee)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	price, err := booking.NewMoney(expSnap.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := booking.NewBooking(
		booking.ExperienceSpec{
			ID:            expSnap.ID,
			HostID:        expSnap.HostID,
			Title:         expSnap.Title,
			PricePerGuest: price,
			Currency:      expSnap.Currency,
		},
		params.UserID,
		params.Guests,
		snap,
		params.ReferralCode,
	)
	if err != nil {
		if errors.Is(err, booking.ErrSettlementConfig) {
			return nil, errs.ErrSettlementConfig
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity, nil
}

func (c *checkoutCommandsImpl) cancelAfterFailedCharge(ctx context.Context, bookingID uuid.UUID) {
	if err := c.bookingRepo.Cancel(context.WithoutCancel(ctx), bookingID); err != nil {
		slog.Warn("failed to cancel booking after failed charge",
			"booking_id", bookingID, "error", err.Error())
	}
}

func purchaseEventFor(view *queries.BookingView, expSnap *ExperienceSnapshot, receipt *ChargeReceipt) PurchaseEvent {
	return PurchaseEvent{
		TransactionID: receipt.TransactionID,
		Value:         float64(view.TotalCents) / 100.0,
		Currency:      view.Currency,
		Items: []PurchaseItem{
			{
				ItemID:       expSnap.ID.String(),
				ItemName:     expSnap.Title,
				Price:        float64(expSnap.PriceCents) / 100.0,
				Quantity:     view.Guests,
				ItemCategory: "experience",
			},
		},
	}
}
