package registry

import (
	"fmt"
	"sort"
	"time"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// AddFlight inserts a flight. An id of zero allocates the next free one.
// Fails with ErrDuplicateID when the id is taken and with ErrDuplicateFlight
// when a non-deleted flight already has the same number on the same day.
func (r *Registry) AddFlight(f *domain.Flight) (*domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == 0 {
		f.ID = r.nextFlightID()
	} else if _, ok := r.flights[f.ID]; ok {
		return nil, fmt.Errorf("flight %d: %w", f.ID, domain.ErrDuplicateID)
	}
	for _, existing := range r.flights {
		if existing.Deleted {
			continue
		}
		if existing.FlightNumber == f.FlightNumber && sameDay(existing.DepartureDate, f.DepartureDate) {
			return nil, fmt.Errorf("flight %s on %s: %w",
				f.FlightNumber, f.DepartureDate.Format("2006-01-02"), domain.ErrDuplicateFlight)
		}
	}

	stored := f.Clone()
	r.flights[f.ID] = stored
	return stored.Clone(), nil
}

// FlightByID fails with ErrNotFound for unknown and soft-deleted flights alike.
func (r *Registry) FlightByID(id int64) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, err := r.activeFlight(id)
	if err != nil {
		return nil, err
	}
	return f.Clone(), nil
}

// RemoveFlight soft-deletes. Bookings on the flight are left alone: they stay
// valid historical records.
func (r *Registry) RemoveFlight(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.activeFlight(id)
	if err != nil {
		return err
	}
	f.Deleted = true
	return nil
}

// Flights lists non-deleted flights that have not yet departed, in id order.
func (r *Registry) Flights() []domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	out := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		if f.Deleted || f.Departed(now) {
			continue
		}
		out = append(out, *f.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllFlights lists everything, soft-deleted and departed included, in id order.
func (r *Registry) AllFlights() []domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		out = append(out, *f.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FlightExists reports presence regardless of the deleted flag.
func (r *Registry) FlightExists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.flights[id]
	return ok
}

// activeFlight resolves a non-deleted flight. Caller holds the lock.
func (r *Registry) activeFlight(id int64) (*domain.Flight, error) {
	f, ok := r.flights[id]
	if !ok || f.Deleted {
		return nil, fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

func (r *Registry) nextFlightID() int64 {
	var max int64
	for id := range r.flights {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func sameDay(a, b time.Time) bool {
	return domain.DateOnly(a).Equal(domain.DateOnly(b))
}
