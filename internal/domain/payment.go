package domain

import (
	"strings"
	"time"
)

// Payment is an append-only log entry. The booking id is not referentially
// enforced and the log is independent of Booking.PaymentProcessed.
type Payment struct {
	BookingID   int64
	Amount      float64
	CardNumber  string
	ExpiryDate  string
	PaymentDate time.Time
}

// MaskedCard hides everything but the trailing four digits.
func (p Payment) MaskedCard() string {
	digits := strings.TrimSpace(p.CardNumber)
	if len(digits) <= 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
