package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mahatoankit/flightbook/config"
	"github.com/mahatoankit/flightbook/internal/auth"
	"github.com/mahatoankit/flightbook/internal/bootstrap"
	"github.com/mahatoankit/flightbook/internal/cache"
	"github.com/mahatoankit/flightbook/internal/logging"
	"github.com/mahatoankit/flightbook/internal/metrics"
	"github.com/mahatoankit/flightbook/internal/registry"
	"github.com/mahatoankit/flightbook/internal/service/booking"
	"github.com/mahatoankit/flightbook/internal/service/customers"
	"github.com/mahatoankit/flightbook/internal/service/flights"
	"github.com/mahatoankit/flightbook/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logging.Init(os.Getenv("APP_ENV")); err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := registry.New()
	store := storage.NewStore(cfg.Storage.Dir)
	if err := store.Load(reg); err != nil {
		logging.Error("load data files", "error", err.Error())
		log.Fatalf("load data files: %v", err)
	}
	logging.Info("registry hydrated",
		"flights", len(reg.AllFlights()),
		"customers", len(reg.AllCustomers()),
		"bookings", len(reg.Bookings())+len(reg.CancelledBookings()),
		"payments", len(reg.Payments()),
	)

	memCache := cache.NewMemoryCache(cfg.Cache.FlightsTTL(), cfg.Cache.CleanupInterval())
	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	flightService := flights.NewFlightService(reg, memCache)
	bookingService := booking.NewBookingService(reg, memCache, booking.WithMetrics(metricsReg))
	customerService := customers.NewCustomerService(reg)
	sessions := auth.NewService(reg, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.SessionTTL())

	if cfg.Autosave.IntervalMinutes > 0 {
		go autosave(ctx, store, reg, cfg.Autosave.Interval())
	}

	deps := bootstrap.Deps{
		Flights:   flightService,
		Customers: customerService,
		Bookings:  bookingService,
		Sessions:  sessions,
		Metrics:   metricsReg,
		OnShutdown: func() error {
			logging.Info("saving registry", "dir", cfg.Storage.Dir)
			return store.Save(reg)
		},
	}
	if err := bootstrap.Run(ctx, cfg, deps); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// autosave periodically flushes the registry so an unclean exit loses at most
// one interval of changes.
func autosave(ctx context.Context, store *storage.Store, reg *registry.Registry, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := store.Save(reg); err != nil {
				logging.Error("autosave failed", "error", err.Error())
				continue
			}
			logging.Debug("autosave completed")
		case <-ctx.Done():
			return
		}
	}
}
