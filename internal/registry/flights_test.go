package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahatoankit/flightbook/internal/domain"
)

func TestRegistry_AddFlight_AllocatesIDs(t *testing.T) {
	r := newTestRegistry()

	f1 := seedFlight(t, r, "FB100", day(2026, time.June, 1), 100, 150)
	f2 := seedFlight(t, r, "FB200", day(2026, time.June, 2), 100, 150)

	assert.Equal(t, int64(1), f1.ID)
	assert.Equal(t, int64(2), f2.ID)
}

func TestRegistry_AddFlight_DuplicateID(t *testing.T) {
	r := newTestRegistry()
	seedFlight(t, r, "FB100", day(2026, time.June, 1), 100, 150)

	_, err := r.AddFlight(domain.NewFlight(1, "FB300", "KTM", "DEL", day(2026, time.July, 1), 100, 150))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestRegistry_AddFlight_DuplicateNumberAndDate(t *testing.T) {
	r := newTestRegistry()
	seedFlight(t, r, "FB100", day(2026, time.June, 1), 100, 150)

	_, err := r.AddFlight(domain.NewFlight(0, "FB100", "KTM", "DEL", day(2026, time.June, 1), 100, 150))
	assert.ErrorIs(t, err, domain.ErrDuplicateFlight)

	// Same number on a different day is fine.
	_, err = r.AddFlight(domain.NewFlight(0, "FB100", "KTM", "DEL", day(2026, time.June, 2), 100, 150))
	assert.NoError(t, err)
}

func TestRegistry_AddFlight_DeletedFlightDoesNotBlockReuse(t *testing.T) {
	r := newTestRegistry()
	f := seedFlight(t, r, "FB100", day(2026, time.June, 1), 100, 150)
	require.NoError(t, r.RemoveFlight(f.ID))

	_, err := r.AddFlight(domain.NewFlight(0, "FB100", "KTM", "DEL", day(2026, time.June, 1), 100, 150))
	assert.NoError(t, err)
}

func TestRegistry_RemoveFlight_SoftDeletes(t *testing.T) {
	r := newTestRegistry()
	f := seedFlight(t, r, "FB100", day(2026, time.June, 1), 100, 150)

	require.NoError(t, r.RemoveFlight(f.ID))

	_, err := r.FlightByID(f.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.RemoveFlight(f.ID), domain.ErrNotFound)

	all := r.AllFlights()
	require.Len(t, all, 1)
	assert.True(t, all[0].Deleted)
	assert.True(t, r.FlightExists(f.ID))
}

func TestRegistry_Flights_FiltersDeletedAndDeparted(t *testing.T) {
	r := newTestRegistry()
	past := seedFlight(t, r, "FB100", day(2026, time.February, 1), 100, 150)
	deleted := seedFlight(t, r, "FB200", day(2026, time.June, 1), 100, 150)
	upcoming := seedFlight(t, r, "FB300", day(2026, time.June, 2), 100, 150)
	today := seedFlight(t, r, "FB400", day(2026, time.March, 1), 100, 150)
	require.NoError(t, r.RemoveFlight(deleted.ID))

	active := r.Flights()
	ids := make([]int64, 0, len(active))
	for _, f := range active {
		ids = append(ids, f.ID)
	}
	// Departing today still counts; id order.
	assert.Equal(t, []int64{upcoming.ID, today.ID}, ids)
	assert.NotContains(t, ids, past.ID)
	assert.NotContains(t, ids, deleted.ID)

	assert.Len(t, r.AllFlights(), 4)
}

func TestRegistry_FlightByID_Unknown(t *testing.T) {
	r := newTestRegistry()

	_, err := r.FlightByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_FlightByID_ReturnsACopy(t *testing.T) {
	r := newTestRegistry()
	f := seedFlight(t, r, "FB100", day(2026, time.June, 1), 100, 150)

	got, err := r.FlightByID(f.ID)
	require.NoError(t, err)
	got.FlightNumber = "HACKED"
	require.NoError(t, got.AddPassenger(99))

	fresh, err := r.FlightByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "FB100", fresh.FlightNumber)
	assert.Equal(t, 0, fresh.PassengerCount())
}
