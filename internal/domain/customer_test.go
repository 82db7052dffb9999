package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_BookingList(t *testing.T) {
	c := NewCustomer(1, "Asha", "123", "asha@example.com", "pw")

	c.AddBooking(5)
	c.AddBooking(7)
	assert.Equal(t, []int64{5, 7}, c.BookingIDs())

	c.RemoveBooking(5)
	assert.Equal(t, []int64{7}, c.BookingIDs())

	// Removing an unknown id is harmless.
	c.RemoveBooking(99)
	assert.Equal(t, []int64{7}, c.BookingIDs())
}

func TestCustomer_BookingIDs_IsASnapshot(t *testing.T) {
	c := NewCustomer(1, "Asha", "123", "asha@example.com", "pw")
	c.AddBooking(1)
	c.AddBooking(2)

	snapshot := c.BookingIDs()
	c.RemoveBooking(1)
	assert.Equal(t, []int64{1, 2}, snapshot)
}

func TestCustomer_Clone_IsolatesBookings(t *testing.T) {
	c := NewCustomer(1, "Asha", "123", "asha@example.com", "pw")
	c.AddBooking(1)

	clone := c.Clone()
	clone.AddBooking(2)
	clone.RemoveBooking(1)

	assert.Equal(t, []int64{1}, c.BookingIDs())
}
