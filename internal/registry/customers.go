package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// AddCustomer inserts a customer. An id of zero allocates the next free one.
// Name and email must be unique among non-deleted customers, compared
// case-insensitively.
func (r *Registry) AddCustomer(c *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.nextCustomerID()
	} else if _, ok := r.customers[c.ID]; ok {
		return nil, fmt.Errorf("customer %d: %w", c.ID, domain.ErrDuplicateID)
	}
	if err := r.checkCustomerUnique(c.ID, c.Name, c.Email); err != nil {
		return nil, err
	}

	stored := c.Clone()
	r.customers[c.ID] = stored
	return stored.Clone(), nil
}

// CustomerByID fails with ErrNotFound for unknown and soft-deleted customers.
func (r *Registry) CustomerByID(id int64) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, err := r.activeCustomer(id)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// UpdateCustomer changes name, phone and email, re-checking uniqueness against
// the other non-deleted customers.
func (r *Registry) UpdateCustomer(id int64, name, phone, email string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.activeCustomer(id)
	if err != nil {
		return nil, err
	}
	if err := r.checkCustomerUnique(id, name, email); err != nil {
		return nil, err
	}
	c.Name = name
	c.Phone = phone
	c.Email = email
	return c.Clone(), nil
}

// RemoveCustomer cancels every active booking the customer holds, with the
// cancellation fee forced to zero, then soft-deletes the account.
func (r *Registry) RemoveCustomer(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.activeCustomer(id)
	if err != nil {
		return err
	}
	// Iterate a snapshot: cancelling mutates the underlying list.
	for _, bookingID := range c.BookingIDs() {
		if _, ok := r.bookings[bookingID]; !ok {
			continue
		}
		if _, err := r.cancelLocked(bookingID, 0); err != nil {
			return err
		}
	}
	c.Deleted = true
	return nil
}

// Customers lists non-deleted customers in id order.
func (r *Registry) Customers() []domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if c.Deleted {
			continue
		}
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllCustomers lists everything, soft-deleted included, in id order.
func (r *Registry) AllCustomers() []domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CustomerExists reports presence regardless of the deleted flag.
func (r *Registry) CustomerExists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.customers[id]
	return ok
}

func (r *Registry) activeCustomer(id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.Deleted {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// checkCustomerUnique enforces name/email uniqueness among non-deleted
// customers other than selfID. Caller holds the lock.
func (r *Registry) checkCustomerUnique(selfID int64, name, email string) error {
	for _, existing := range r.customers {
		if existing.Deleted || existing.ID == selfID {
			continue
		}
		if strings.EqualFold(existing.Name, name) {
			return fmt.Errorf("customer name %q: %w", name, domain.ErrDuplicateName)
		}
		if strings.EqualFold(existing.Email, email) {
			return fmt.Errorf("customer email %q: %w", email, domain.ErrDuplicateEmail)
		}
	}
	return nil
}

func (r *Registry) nextCustomerID() int64 {
	var max int64
	for id := range r.customers {
		if id > max {
			max = id
		}
	}
	return max + 1
}
