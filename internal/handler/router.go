package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/Varma0099/lill-things/internal/handler/api"
	"github.com/Varma0099/lill-things/internal/handler/middleware"
	"github.com/Varma0099/lill-things/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Slot         *api.SlotHandler
	Activity     *api.ActivityHandler
	Admin        *api.AdminHandler
	Realtime     *api.RealtimeHandler
	AuthMw       *middleware.AuthMiddleware
	RateLimiters *middleware.RateLimiters
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/ws", h.Realtime.Serve)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/activities", Handler: h.Activity.List},
			{Method: http.MethodGet, Path: "/slots/availability", Handler: h.Slot.Availability},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{h.RateLimiters.Booking.Handler()}},
			{Method: http.MethodGet, Path: "/bookings/:code", Handler: h.Booking.GetByCode},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{h.RateLimiters.Login.Handler()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(h.AuthMw.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodPatch, Path: "/bookings/:code/status", Handler: h.Admin.UpdateBookingStatus},
				{Method: http.MethodPatch, Path: "/slots/availability", Handler: h.Admin.UpdateSlot},
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
