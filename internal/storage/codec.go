package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// One entity per line, fields joined with "::". Trailing optional fields may be
// omitted and take the defaults below.
const (
	separator  = "::"
	dateLayout = "2006-01-02"

	defaultBasePrice    = 100.0
	defaultCapacity     = 150
	placeholderPassword = "changeme"
)

// Flight(id, number, origin, destination, date, basePrice, capacity, deleted)
func decodeFlight(line string) (*domain.Flight, error) {
	fields := strings.Split(line, separator)
	if len(fields) < 5 {
		return nil, fmt.Errorf("flight record needs at least 5 fields, got %d", len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}
	departure, err := time.Parse(dateLayout, fields[4])
	if err != nil {
		return nil, fmt.Errorf("departure date %q: %w", fields[4], err)
	}

	basePrice := defaultBasePrice
	if len(fields) > 5 {
		if basePrice, err = strconv.ParseFloat(fields[5], 64); err != nil {
			return nil, fmt.Errorf("base price %q: %w", fields[5], err)
		}
	}
	capacity := defaultCapacity
	if len(fields) > 6 {
		if capacity, err = strconv.Atoi(fields[6]); err != nil {
			return nil, fmt.Errorf("capacity %q: %w", fields[6], err)
		}
	}
	f := domain.NewFlight(id, fields[1], fields[2], fields[3], departure, basePrice, capacity)
	if len(fields) > 7 {
		if f.Deleted, err = strconv.ParseBool(fields[7]); err != nil {
			return nil, fmt.Errorf("deleted flag %q: %w", fields[7], err)
		}
	}
	return f, nil
}

func encodeFlight(f domain.Flight) string {
	return strings.Join([]string{
		strconv.FormatInt(f.ID, 10),
		f.FlightNumber,
		f.Origin,
		f.Destination,
		f.DepartureDate.Format(dateLayout),
		formatAmount(f.BasePrice),
		strconv.Itoa(f.Capacity),
		strconv.FormatBool(f.Deleted),
	}, separator)
}

// Customer(id, name, phone, email, password, deleted)
func decodeCustomer(line string) (*domain.Customer, error) {
	fields := strings.Split(line, separator)
	if len(fields) < 4 {
		return nil, fmt.Errorf("customer record needs at least 4 fields, got %d", len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}
	password := placeholderPassword
	if len(fields) > 4 {
		password = fields[4]
	}
	c := domain.NewCustomer(id, fields[1], fields[2], fields[3], password)
	if len(fields) > 5 {
		if c.Deleted, err = strconv.ParseBool(fields[5]); err != nil {
			return nil, fmt.Errorf("deleted flag %q: %w", fields[5], err)
		}
	}
	return c, nil
}

func encodeCustomer(c domain.Customer) string {
	return strings.Join([]string{
		strconv.FormatInt(c.ID, 10),
		c.Name,
		c.Phone,
		c.Email,
		c.Password,
		strconv.FormatBool(c.Deleted),
	}, separator)
}

// Booking(id, customerId, flightId, date, fee, cancelled, paid). The last two
// are optional and default to false so older files still load, while the
// active/cancelled partition survives a save/load cycle.
func decodeBooking(line string) (*domain.Booking, error) {
	fields := strings.Split(line, separator)
	if len(fields) < 5 {
		return nil, fmt.Errorf("booking record needs at least 5 fields, got %d", len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}
	customerID, err := parseID(fields[1])
	if err != nil {
		return nil, err
	}
	flightID, err := parseID(fields[2])
	if err != nil {
		return nil, err
	}
	bookingDate, err := time.Parse(dateLayout, fields[3])
	if err != nil {
		return nil, fmt.Errorf("booking date %q: %w", fields[3], err)
	}
	fee, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, fmt.Errorf("fee %q: %w", fields[4], err)
	}

	b := &domain.Booking{ID: id, CustomerID: customerID, FlightID: flightID, BookingDate: bookingDate, Fee: fee}
	if len(fields) > 5 {
		if b.Cancelled, err = strconv.ParseBool(fields[5]); err != nil {
			return nil, fmt.Errorf("cancelled flag %q: %w", fields[5], err)
		}
	}
	if len(fields) > 6 {
		if b.PaymentProcessed, err = strconv.ParseBool(fields[6]); err != nil {
			return nil, fmt.Errorf("paid flag %q: %w", fields[6], err)
		}
	}
	return b, nil
}

func encodeBooking(b domain.Booking) string {
	return strings.Join([]string{
		strconv.FormatInt(b.ID, 10),
		strconv.FormatInt(b.CustomerID, 10),
		strconv.FormatInt(b.FlightID, 10),
		b.BookingDate.Format(dateLayout),
		formatAmount(b.Fee),
		strconv.FormatBool(b.Cancelled),
		strconv.FormatBool(b.PaymentProcessed),
	}, separator)
}

// Payment(bookingId, amount, cardNumber, expiryDate, date)
func decodePayment(line string) (domain.Payment, error) {
	fields := strings.Split(line, separator)
	if len(fields) < 5 {
		return domain.Payment{}, fmt.Errorf("payment record needs 5 fields, got %d", len(fields))
	}
	bookingID, err := parseID(fields[0])
	if err != nil {
		return domain.Payment{}, err
	}
	amount, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("amount %q: %w", fields[1], err)
	}
	paymentDate, err := time.Parse(dateLayout, fields[4])
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment date %q: %w", fields[4], err)
	}
	return domain.Payment{
		BookingID:   bookingID,
		Amount:      amount,
		CardNumber:  fields[2],
		ExpiryDate:  fields[3],
		PaymentDate: paymentDate,
	}, nil
}

func encodePayment(p domain.Payment) string {
	return strings.Join([]string{
		strconv.FormatInt(p.BookingID, 10),
		formatAmount(p.Amount),
		p.CardNumber,
		p.ExpiryDate,
		p.PaymentDate.Format(dateLayout),
	}, separator)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q: %w", s, err)
	}
	return id, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
