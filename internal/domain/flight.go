package domain

import (
	"fmt"
	"time"
)

// Flight is a scheduled departure with a fixed seat capacity. Removed flights are
// soft-deleted so bookings made against them remain resolvable. The passenger set
// is keyed by customer id and is only mutated through the methods below, which
// keep its size within Capacity.
type Flight struct {
	ID            int64
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate time.Time
	BasePrice     float64
	Capacity      int
	Deleted       bool

	passengers map[int64]struct{}
}

func NewFlight(id int64, number, origin, destination string, departure time.Time, basePrice float64, capacity int) *Flight {
	return &Flight{
		ID:            id,
		FlightNumber:  number,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		BasePrice:     basePrice,
		Capacity:      capacity,
		passengers:    make(map[int64]struct{}),
	}
}

// AddPassenger is the authoritative capacity gate. Adding a customer that is
// already aboard is a no-op.
func (f *Flight) AddPassenger(customerID int64) error {
	if f.passengers == nil {
		f.passengers = make(map[int64]struct{})
	}
	if _, ok := f.passengers[customerID]; ok {
		return nil
	}
	if len(f.passengers) >= f.Capacity {
		return fmt.Errorf("flight %s is fully booked: %w", f.FlightNumber, ErrCapacityExceeded)
	}
	f.passengers[customerID] = struct{}{}
	return nil
}

// RestorePassenger seats a customer without the capacity check. It exists for the
// data-file load path, where records are trusted once parsed.
func (f *Flight) RestorePassenger(customerID int64) {
	if f.passengers == nil {
		f.passengers = make(map[int64]struct{})
	}
	f.passengers[customerID] = struct{}{}
}

func (f *Flight) RemovePassenger(customerID int64) {
	delete(f.passengers, customerID)
}

func (f *Flight) HasPassenger(customerID int64) bool {
	_, ok := f.passengers[customerID]
	return ok
}

func (f *Flight) PassengerCount() int {
	return len(f.passengers)
}

// Departed reports whether the flight's departure date is before the calendar
// date of now.
func (f *Flight) Departed(now time.Time) bool {
	return DateOnly(f.DepartureDate).Before(DateOnly(now))
}

// Clone returns a deep copy; mutating the copy's passenger set does not touch
// the original.
func (f *Flight) Clone() *Flight {
	out := *f
	out.passengers = make(map[int64]struct{}, len(f.passengers))
	for id := range f.passengers {
		out.passengers[id] = struct{}{}
	}
	return &out
}
