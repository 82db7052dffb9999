package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// MemoryCache is the in-process cache for the priced flight listing. The
// system is single-process, so there is no external cache server; entries
// expire by TTL and are invalidated explicitly on registry mutations.
type MemoryCache struct {
	store      *gocache.Cache
	flightsTTL time.Duration
}

func NewMemoryCache(flightsTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store:      gocache.New(flightsTTL, cleanupInterval),
		flightsTTL: flightsTTL,
	}
}

func (c *MemoryCache) GetFlights(ctx context.Context) ([]domain.PricedFlight, error) {
	v, ok := c.store.Get(flightsKey())
	if !ok {
		return nil, nil
	}
	flights, ok := v.([]domain.PricedFlight)
	if !ok {
		return nil, nil
	}
	return flights, nil
}

func (c *MemoryCache) SetFlights(ctx context.Context, flights []domain.PricedFlight) error {
	c.store.Set(flightsKey(), flights, c.flightsTTL)
	return nil
}

func (c *MemoryCache) InvalidateFlights(ctx context.Context) error {
	c.store.Delete(flightsKey())
	return nil
}

func flightsKey() string {
	return "cache:flights"
}
