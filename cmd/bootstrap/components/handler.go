package components

import (
	"experience-market/internal/handler"
	"experience-market/internal/handler/api"
	"experience-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSettingsHandler,
		api.NewBookingHandler,
		api.NewExperienceHandler,
		api.NewFavoritesHandler,
		api.NewHostHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	settings *api.SettingsHandler,
	booking *api.BookingHandler,
	experience *api.ExperienceHandler,
	favorites *api.FavoritesHandler,
	host *api.HostHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Settings:   settings,
		Booking:    booking,
		Experience: experience,
		Favorites:  favorites,
		Host:       host,
	}
}
