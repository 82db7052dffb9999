package flights

import (
	"context"
	"errors"
	"time"

	"github.com/mahatoankit/flightbook/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.PricedFlight, error)
	ListAll(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	Remove(ctx context.Context, id int64) error
}

// Registry is the slice of the domain registry the flight service drives.
type Registry interface {
	AddFlight(f *domain.Flight) (*domain.Flight, error)
	FlightByID(id int64) (*domain.Flight, error)
	RemoveFlight(id int64) error
	Flights() []domain.Flight
	AllFlights() []domain.Flight
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.PricedFlight, error)
	SetFlights(ctx context.Context, flights []domain.PricedFlight) error
	InvalidateFlights(ctx context.Context) error
}

type CreateFlightInput struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate time.Time
	BasePrice     float64
	Capacity      int
}

type FlightService struct {
	reg   Registry
	cache Cache
	now   func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) { s.now = now }
}

func NewFlightService(reg Registry, cache Cache, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{reg: reg, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the bookable flights priced as of today, cache first.
func (s *FlightService) List(ctx context.Context) ([]domain.PricedFlight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	now := s.now()
	flights := s.reg.Flights()
	priced := make([]domain.PricedFlight, 0, len(flights))
	for _, f := range flights {
		priced = append(priced, domain.PricedFlight{
			Flight:     f,
			CurrentFee: domain.CalculatePrice(&f, now),
			SeatsLeft:  f.Capacity - f.PassengerCount(),
		})
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, priced)
	}
	return priced, nil
}

func (s *FlightService) ListAll(ctx context.Context) ([]domain.Flight, error) {
	return s.reg.AllFlights(), nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.reg.FlightByID(id)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if input.FlightNumber == "" {
		return nil, errors.New("flight number is required")
	}
	if input.Capacity <= 0 {
		return nil, errors.New("capacity must be positive")
	}
	if input.BasePrice < 0 {
		return nil, errors.New("base price must not be negative")
	}

	f := domain.NewFlight(0, input.FlightNumber, input.Origin, input.Destination,
		input.DepartureDate, input.BasePrice, input.Capacity)
	created, err := s.reg.AddFlight(f)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return created, nil
}

func (s *FlightService) Remove(ctx context.Context, id int64) error {
	if err := s.reg.RemoveFlight(id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
