package domain

import "time"

// CalculatePrice returns the fee for booking f on bookingDate. Bookings within
// a week of departure pay 1.5x the base price, within two weeks 1.25x, earlier
// ones the base price. A booking dated after departure is not guarded against
// and lands in the closest tier.
func CalculatePrice(f *Flight, bookingDate time.Time) float64 {
	daysLeft := daysBetween(bookingDate, f.DepartureDate)
	switch {
	case daysLeft <= 7:
		return f.BasePrice * 1.50
	case daysLeft <= 14:
		return f.BasePrice * 1.25
	default:
		return f.BasePrice
	}
}

// PricedFlight is a listing entry carrying the fee a booking made on a given
// date would pay, alongside remaining capacity.
type PricedFlight struct {
	Flight
	CurrentFee float64
	SeatsLeft  int
}

// DateOnly truncates t to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
