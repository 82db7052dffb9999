package registry

import "github.com/mahatoankit/flightbook/internal/domain"

// AddPayment appends to the payment log. The booking id is not checked and the
// booking's payment-processed flag is not touched; the log and the flag are
// two independent signals.
func (r *Registry) AddPayment(p domain.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
}

// Payments returns the log in append order.
func (r *Registry) Payments() []domain.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Payment, len(r.payments))
	copy(out, r.payments)
	return out
}
