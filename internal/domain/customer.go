package domain

// Customer is an account holder. Email and name are unique among non-deleted
// customers; the password is a cleartext string compared verbatim at login,
// which is the modeled behavior, not a security feature.
//
// The bookings list is ordered by creation and owned by the customer for
// display; capacity accounting lives on the flight's passenger set.
type Customer struct {
	ID       int64
	Name     string
	Phone    string
	Email    string
	Password string
	Deleted  bool

	bookings []int64
}

func NewCustomer(id int64, name, phone, email, password string) *Customer {
	return &Customer{ID: id, Name: name, Phone: phone, Email: email, Password: password}
}

func (c *Customer) AddBooking(bookingID int64) {
	c.bookings = append(c.bookings, bookingID)
}

// RemoveBooking drops the first occurrence of bookingID from the list.
func (c *Customer) RemoveBooking(bookingID int64) {
	for i, id := range c.bookings {
		if id == bookingID {
			c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
			return
		}
	}
}

// BookingIDs returns a snapshot copy, safe to iterate while bookings are being
// cancelled underneath it.
func (c *Customer) BookingIDs() []int64 {
	out := make([]int64, len(c.bookings))
	copy(out, c.bookings)
	return out
}

func (c *Customer) Clone() *Customer {
	out := *c
	out.bookings = make([]int64, len(c.bookings))
	copy(out.bookings, c.bookings)
	return &out
}
