package handler

import (
	"net/http"

	"club-booking/internal/domain/auth"
	"club-booking/internal/handler/api"
	"club-booking/internal/handler/middleware"
	"club-booking/internal/infra/metrics"
	"club-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Event   *api.EventHandler
	Payment *api.PaymentHandler
}

func NewHandlers(booking *api.BookingHandler, event *api.EventHandler, payment *api.PaymentHandler) Handlers {
	return Handlers{Booking: booking, Event: event, Payment: payment}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	recorder *metrics.Recorder,
	gatherer prometheus.Gatherer,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, recorder)
	setupRoutes(engine, gatherer, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(recorder))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		addRoutes(events, []route{
			{Method: http.MethodGet, Path: "/counters", Handler: h.Event.Counters},
			{Method: http.MethodPost, Path: "/booking", Handler: h.Booking.Book},
			{Method: http.MethodPost, Path: "/prebooking", Handler: h.Booking.PreBook},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			organizer := authMiddleware.RequireRoleAtLeast(auth.RoleOrganizer)
			treasurer := authMiddleware.RequireRoleAtLeast(auth.RoleTreasurer)

			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{organizer}},
				{Method: http.MethodPost, Path: "/prebooking-links", Handler: h.Booking.IssuePreBookingLink, Mw: []gin.HandlerFunc{organizer}},
				{Method: http.MethodPost, Path: "/payments/verify", Handler: h.Payment.Verify, Mw: []gin.HandlerFunc{treasurer}},
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
