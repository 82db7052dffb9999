package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahatoankit/flightbook/internal/domain"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	got, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	flights := []domain.PricedFlight{{CurrentFee: 150, SeatsLeft: 10}}
	require.NoError(t, c.SetFlights(ctx, flights))

	got, err = c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Equal(t, flights, got)
}

func TestMemoryCache_Invalidate(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetFlights(ctx, []domain.PricedFlight{{CurrentFee: 150}}))
	require.NoError(t, c.InvalidateFlights(ctx))

	got, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCache_Expires(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetFlights(ctx, []domain.PricedFlight{{CurrentFee: 150}}))
	time.Sleep(30 * time.Millisecond)

	got, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
