package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// Fixed clock for deterministic past-departure filtering and rebook dates.
var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestRegistry() *Registry {
	return New(WithClock(func() time.Time { return testNow }))
}

func seedFlight(t *testing.T, r *Registry, number string, departure time.Time, basePrice float64, capacity int) *domain.Flight {
	t.Helper()
	f, err := r.AddFlight(domain.NewFlight(0, number, "KTM", "DEL", departure, basePrice, capacity))
	require.NoError(t, err)
	return f
}

func seedCustomer(t *testing.T, r *Registry, name, email string) *domain.Customer {
	t.Helper()
	c, err := r.AddCustomer(domain.NewCustomer(0, name, "9800000000", email, "pw"))
	require.NoError(t, err)
	return c
}
