package registry

import (
	"sync"
	"time"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// Registry is the in-memory aggregate owning every flight, customer, booking
// and payment. It is the single source of truth: all invariants that span
// collections (seat capacity, id uniqueness, the active/cancelled booking
// partition) are enforced here, behind one mutex, because the HTTP surface
// makes the process multi-client.
//
// Queries hand out defensive copies; entities are only mutated through
// registry operations.
type Registry struct {
	mu        sync.RWMutex
	flights   map[int64]*domain.Flight
	customers map[int64]*domain.Customer
	bookings  map[int64]*domain.Booking // active only
	cancelled map[int64]*domain.Booking
	payments  []domain.Payment
	now       func() time.Time
}

type Option func(*Registry)

// WithClock overrides the time source used for past-departure filtering and
// rebooking dates.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func New(opts ...Option) *Registry {
	r := &Registry{
		flights:   make(map[int64]*domain.Flight),
		customers: make(map[int64]*domain.Customer),
		bookings:  make(map[int64]*domain.Booking),
		cancelled: make(map[int64]*domain.Booking),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
