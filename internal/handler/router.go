package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"experience-market/internal/domain/user"
	"experience-market/internal/handler/api"
	"experience-market/internal/handler/middleware"
	"experience-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Settings   *api.SettingsHandler
	Booking    *api.BookingHandler
	Experience *api.ExperienceHandler
	Favorites  *api.FavoritesHandler
	Host       *api.HostHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, authMiddleware)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, authMiddleware *middleware.AuthMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	// OptionalAuth before ReferralAttribution: the signed-in redirect off the
	// login pages has to know who the requester is.
	engine.Use(authMiddleware.OptionalAuth())
	engine.Use(middleware.ReferralAttribution(cfg.Cookie))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.List},
				{Method: http.MethodGet, Path: "/:key", Handler: h.Settings.Get},
				{Method: http.MethodPut, Path: "/:key", Handler: h.Settings.Update},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			})
		}

		experiences := apiGroup.Group("/experiences")
		{
			addRoutes(experiences, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Experience.GetExperience},
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: h.Experience.CreateExperience,
					Mw: []gin.HandlerFunc{
						authMiddleware.RequireAuth(),
						authMiddleware.RequireRoleAtLeast(user.RoleHost),
					},
				},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(authMiddleware.RequireAuth())
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Favorites.List},
				{Method: http.MethodPost, Path: "/merge", Handler: h.Favorites.Merge},
			})
		}

		hosts := apiGroup.Group("/hosts")
		hosts.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleHost))
		{
			addRoutes(hosts, []route{
				{Method: http.MethodPut, Path: "/profile", Handler: h.Host.UpdateProfile},
				{Method: http.MethodGet, Path: "/eligibility", Handler: h.Host.Eligibility},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
