package components

import (
	"experience-market/internal/infra/analytics"
	"experience-market/internal/infra/db"
	"experience-market/internal/infra/repository"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Each repository serves both its write-side command port and, where one
// exists, the read store behind the query service.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(pool *pgxpool.Pool) db.Database { return pool },
		fx.Annotate(
			repository.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
			fx.As(new(queries.SettingsReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewExperienceRepository,
			fx.As(new(commands.ExperienceRepository)),
			fx.As(new(queries.ExperienceReadStore)),
		),
		fx.Annotate(
			repository.NewHostProfileRepository,
			fx.As(new(commands.HostProfileRepository)),
			fx.As(new(queries.HostProfileReadStore)),
		),
		fx.Annotate(
			repository.NewFavoritesRepository,
			fx.As(new(commands.FavoritesRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewPurchaseMarkerRepository,
			fx.As(new(analytics.PurchaseMarker)),
		),
	),
)
