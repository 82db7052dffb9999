package domain

import "time"

// Booking ties one customer to one flight. The fee is computed once at creation
// from the flight's base price and the booking date and never changes; the
// cancellation fee is a separate charge deducted from it on cancel.
//
// A booking is ACTIVE until cancelled; cancellation is terminal.
type Booking struct {
	ID               int64
	CustomerID       int64
	FlightID         int64
	BookingDate      time.Time
	Fee              float64
	Cancelled        bool
	PaymentProcessed bool
}

func (b *Booking) Cancel() {
	b.Cancelled = true
}

// Refund is the amount returned to the customer after deducting the
// cancellation fee, floored at zero. Informational: no payment reversal is
// modeled.
func (b *Booking) Refund(cancellationFee float64) float64 {
	refund := b.Fee - cancellationFee
	if refund < 0 {
		return 0
	}
	return refund
}
