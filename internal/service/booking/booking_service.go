package booking

import (
	"context"
	"errors"
	"time"

	"github.com/mahatoankit/flightbook/internal/domain"
	"github.com/mahatoankit/flightbook/internal/logging"
	"github.com/mahatoankit/flightbook/internal/metrics"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64, cancellationFee float64) (*CancelResult, error)
	RebookBooking(ctx context.Context, id, newFlightID int64) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListCancelled(ctx context.Context) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	MarkPaid(ctx context.Context, id int64) error
	LogPayment(ctx context.Context, input PaymentInput) (domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// Registry is the slice of the domain registry the booking service drives.
type Registry interface {
	AddBooking(customerID, flightID int64, bookingDate time.Time) (*domain.Booking, error)
	CancelBooking(id int64, cancellationFee float64) (float64, error)
	UpdateBooking(id, newFlightID int64) (*domain.Booking, error)
	BookingByID(id int64) (*domain.Booking, error)
	Bookings() []domain.Booking
	CancelledBookings() []domain.Booking
	MarkBookingPaid(id int64) error
	AddPayment(p domain.Payment)
	Payments() []domain.Payment
}

// Cache only needs invalidation here: every booking mutation changes the seat
// counts the flight listing carries.
type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type CreateBookingInput struct {
	CustomerID  int64
	FlightID    int64
	BookingDate time.Time
}

type CancelResult struct {
	BookingID       int64
	CancellationFee float64
	Refund          float64
}

type PaymentInput struct {
	BookingID  int64
	Amount     float64
	CardNumber string
	ExpiryDate string
}

type BookingService struct {
	reg     Registry
	cache   Cache
	metrics *metrics.MetricsRegistry
	now     func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) { s.now = now }
}

func WithMetrics(m *metrics.MetricsRegistry) BookingServiceOption {
	return func(s *BookingService) { s.metrics = m }
}

func NewBookingService(reg Registry, cache Cache, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{reg: reg, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.CustomerID <= 0 {
		return nil, errors.New("customer id must be positive")
	}
	if input.FlightID <= 0 {
		return nil, errors.New("flight id must be positive")
	}
	bookingDate := input.BookingDate
	if bookingDate.IsZero() {
		bookingDate = s.now()
	}

	created, err := s.reg.AddBooking(input.CustomerID, input.FlightID, bookingDate)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.BookingsCreatedTotal.Inc()
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id int64, cancellationFee float64) (*CancelResult, error) {
	if cancellationFee < 0 {
		return nil, errors.New("cancellation fee must not be negative")
	}
	refund, err := s.reg.CancelBooking(id, cancellationFee)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.BookingsCancelledTotal.Inc()
	}
	s.invalidate(ctx)
	return &CancelResult{BookingID: id, CancellationFee: cancellationFee, Refund: refund}, nil
}

// RebookBooking cancels and re-adds in one registry call. The operation is not
// atomic: when the second step fails the original booking is already gone, and
// the error from the registry says so.
func (s *BookingService) RebookBooking(ctx context.Context, id, newFlightID int64) (*domain.Booking, error) {
	rebooked, err := s.reg.UpdateBooking(id, newFlightID)
	s.invalidate(ctx)
	if err != nil {
		logging.Warn("rebooking failed", "booking_id", id, "flight_id", newFlightID, "error", err.Error())
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.BookingsCancelledTotal.Inc()
		s.metrics.BookingsCreatedTotal.Inc()
	}
	return rebooked, nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.reg.BookingByID(id)
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.reg.Bookings(), nil
}

func (s *BookingService) ListCancelled(ctx context.Context) ([]domain.Booking, error) {
	return s.reg.CancelledBookings(), nil
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range s.reg.Bookings() {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

// MarkPaid flips the booking's payment flag. It does not consult or write the
// payment log; the two signals are independent.
func (s *BookingService) MarkPaid(ctx context.Context, id int64) error {
	return s.reg.MarkBookingPaid(id)
}

// LogPayment appends to the payment log. The booking id is recorded as given,
// without referential checks, and the booking's paid flag is left alone.
func (s *BookingService) LogPayment(ctx context.Context, input PaymentInput) (domain.Payment, error) {
	if input.Amount <= 0 {
		return domain.Payment{}, errors.New("amount must be positive")
	}
	if input.CardNumber == "" {
		return domain.Payment{}, errors.New("card number is required")
	}
	p := domain.Payment{
		BookingID:   input.BookingID,
		Amount:      input.Amount,
		CardNumber:  input.CardNumber,
		ExpiryDate:  input.ExpiryDate,
		PaymentDate: s.now(),
	}
	s.reg.AddPayment(p)
	if s.metrics != nil {
		s.metrics.PaymentsLoggedTotal.Inc()
	}
	return p, nil
}

func (s *BookingService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.reg.Payments(), nil
}

func (s *BookingService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
