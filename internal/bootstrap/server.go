package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mahatoankit/flightbook/api"
	"github.com/mahatoankit/flightbook/config"
	"github.com/mahatoankit/flightbook/internal/auth"
	"github.com/mahatoankit/flightbook/internal/logging"
	"github.com/mahatoankit/flightbook/internal/metrics"
	"github.com/mahatoankit/flightbook/internal/service/booking"
	"github.com/mahatoankit/flightbook/internal/service/customers"
	"github.com/mahatoankit/flightbook/internal/service/flights"
)

// Deps is everything the HTTP surface needs wired up.
type Deps struct {
	Flights   flights.FlightUseCase
	Customers customers.CustomerUseCase
	Bookings  booking.BookingUseCase
	Sessions  *auth.Service
	Metrics   *metrics.MetricsRegistry

	// OnShutdown runs after the listener stops, before Run returns. Used to
	// flush the registry to disk.
	OnShutdown func() error
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server
// fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, deps),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logging.Info("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if deps.OnShutdown != nil {
			return deps.OnShutdown()
		}
		return nil
	}
}

// NewRouter assembles the gin engine: public routes at the root, admin routes
// behind the session guard under /admin, plus /metrics and the swagger UI.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.Metrics(deps.Metrics))

	flightHandler := api.NewFlightHandler(deps.Flights)
	customerHandler := api.NewCustomerHandler(deps.Customers, deps.Bookings)
	bookingHandler := api.NewBookingHandler(deps.Bookings)
	paymentHandler := api.NewPaymentHandler(deps.Bookings)
	authHandler := api.NewAuthHandler(deps.Sessions)

	public := router.Group("/")
	flightHandler.Register(public)
	customerHandler.Register(public)
	bookingHandler.Register(public)
	paymentHandler.Register(public)
	authHandler.Register(public)

	admin := router.Group("/admin", api.RequireAdmin(deps.Sessions))
	flightHandler.RegisterAdmin(admin)
	customerHandler.RegisterAdmin(admin)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.DocsDir != "" {
		router.StaticFile("/docs/openapi.json", filepath.Join(cfg.HTTP.DocsDir, "openapi.json"))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/docs/openapi.json"),
		)))
	}

	return router
}
