package registry

import (
	"fmt"
	"sort"
	"time"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// Fraction of the original booking fee charged when a booking is moved to
// another flight.
const rebookCancellationRate = 0.15

// AddBooking books customerID onto flightID. The fee is fixed at creation from
// the flight's base price and bookingDate. On any failure no partial state is
// left behind: the capacity check up front is advisory, the passenger-set add
// is the authoritative gate, and the customer list and booking map are only
// touched after it succeeds.
func (r *Registry) AddBooking(customerID, flightID int64, bookingDate time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addBookingLocked(customerID, flightID, bookingDate)
}

func (r *Registry) addBookingLocked(customerID, flightID int64, bookingDate time.Time) (*domain.Booking, error) {
	c, err := r.activeCustomer(customerID)
	if err != nil {
		return nil, err
	}
	f, err := r.activeFlight(flightID)
	if err != nil {
		return nil, err
	}
	if f.PassengerCount() >= f.Capacity {
		return nil, fmt.Errorf("flight %s: %w", f.FlightNumber, domain.ErrCapacityExceeded)
	}

	fee := domain.CalculatePrice(f, bookingDate)
	if err := f.AddPassenger(customerID); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:          r.nextBookingID(),
		CustomerID:  customerID,
		FlightID:    flightID,
		BookingDate: bookingDate,
		Fee:         fee,
	}
	c.AddBooking(b.ID)
	r.bookings[b.ID] = b

	out := *b
	return &out, nil
}

// CancelBooking moves an active booking to the cancelled set and returns the
// refund: the original fee minus cancellationFee, floored at zero.
func (r *Registry) CancelBooking(id int64, cancellationFee float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelLocked(id, cancellationFee)
}

func (r *Registry) cancelLocked(id int64, cancellationFee float64) (float64, error) {
	b, ok := r.bookings[id]
	if !ok {
		return 0, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	refund := b.Refund(cancellationFee)

	if f, ok := r.flights[b.FlightID]; ok {
		f.RemovePassenger(b.CustomerID)
	}
	if c, ok := r.customers[b.CustomerID]; ok {
		c.RemoveBooking(id)
	}
	b.Cancel()
	delete(r.bookings, id)
	r.cancelled[id] = b
	return refund, nil
}

// UpdateBooking rebooks: it cancels the old booking, charging 15% of its
// original fee, then books the same customer on newFlightID at today's date.
// The two steps are not atomic. If the second fails (the target flight is
// full, deleted or unknown) the old booking stays cancelled and the returned
// error says so.
func (r *Registry) UpdateBooking(id, newFlightID int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	customerID := old.CustomerID

	if _, err := r.cancelLocked(id, old.Fee*rebookCancellationRate); err != nil {
		return nil, err
	}
	rebooked, err := r.addBookingLocked(customerID, newFlightID, r.now())
	if err != nil {
		return nil, fmt.Errorf("booking %d was cancelled but rebooking on flight %d failed: %w", id, newFlightID, err)
	}
	return rebooked, nil
}

// BookingByID resolves active bookings only; cancelled ids fail with
// ErrNotFound.
func (r *Registry) BookingByID(id int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	out := *b
	return &out, nil
}

// Bookings lists active bookings in id order.
func (r *Registry) Bookings() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedBookings(r.bookings)
}

// CancelledBookings lists cancelled bookings in id order.
func (r *Registry) CancelledBookings() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedBookings(r.cancelled)
}

// MarkBookingPaid flips the payment-processed flag on an active booking. It is
// deliberately independent of the payment log; see AddPayment.
func (r *Registry) MarkBookingPaid(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	b.PaymentProcessed = true
	return nil
}

// AddBookingFromData is the bulk-load path used while hydrating from data
// files. It trusts the record: capacity and flight-uniqueness checks are
// bypassed, only id uniqueness across the active and cancelled sets is
// enforced. Customer and flight back-references are reconciled when present.
func (r *Registry) AddBookingFromData(b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; ok {
		return fmt.Errorf("booking %d: %w", b.ID, domain.ErrDuplicateID)
	}
	if _, ok := r.cancelled[b.ID]; ok {
		return fmt.Errorf("booking %d: %w", b.ID, domain.ErrDuplicateID)
	}

	stored := *b
	if stored.Cancelled {
		r.cancelled[stored.ID] = &stored
		return nil
	}
	r.bookings[stored.ID] = &stored
	if c, ok := r.customers[stored.CustomerID]; ok {
		c.AddBooking(stored.ID)
	}
	if f, ok := r.flights[stored.FlightID]; ok {
		f.RestorePassenger(stored.CustomerID)
	}
	return nil
}

// nextBookingID allocates over the union of active and cancelled bookings, so
// an id never resurfaces after its booking is cancelled.
func (r *Registry) nextBookingID() int64 {
	var max int64
	for id := range r.bookings {
		if id > max {
			max = id
		}
	}
	for id := range r.cancelled {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func sortedBookings(m map[int64]*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(m))
	for _, b := range m {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
