package http

import (
	"net/http"
	"time"

	"offbeat-travels/internal/infrastructure/session"
	"offbeat-travels/internal/usecase"
	"offbeat-travels/pkg/logger"
	"offbeat-travels/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	auth     *usecase.AuthService
	flights  *usecase.FlightService
	bookings *usecase.BookingService
	content  *usecase.ContentService
	sessions *session.Store
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewRouter builds the echo instance with all routes wired.
func NewRouter(
	auth *usecase.AuthService,
	flights *usecase.FlightService,
	bookings *usecase.BookingService,
	content *usecase.ContentService,
	sessions *session.Store,
	log logger.Logger,
	m *metrics.Metrics,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	handler := Handler{
		auth:     auth,
		flights:  flights,
		bookings: bookings,
		content:  content,
		sessions: sessions,
		logger:   log,
		metrics:  m,
	}

	e.Use(handler.observeDuration)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/register", handler.PostRegister)
	e.POST("/login", handler.PostLogin)
	e.POST("/logout", handler.PostLogout)

	e.GET("/places", handler.GetPlaces)
	e.GET("/faq", handler.GetFAQ)
	e.POST("/contact", handler.PostContact)

	authed := e.Group("", handler.requireSession)
	authed.GET("/flights/search", handler.GetFlightSearch)
	authed.GET("/flights/:id", handler.GetFlight)
	authed.POST("/bookings", handler.PostBooking)
	authed.GET("/bookings", handler.GetBookings)
	authed.GET("/bookings/:id", handler.GetBookingByID)
	authed.PUT("/bookings/:id", handler.PutBooking)
	authed.POST("/bookings/:id/cancel", handler.PostCancelBooking)

	return e
}

func (h *Handler) observeDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.metrics == nil {
			return next(c)
		}
		start := time.Now()
		err := next(c)
		h.metrics.RequestDuration.Observe(time.Since(start).Seconds())
		return err
	}
}
