package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mahatoankit/flightbook/internal/domain"
	"github.com/mahatoankit/flightbook/internal/logging"
	"github.com/mahatoankit/flightbook/internal/registry"
)

const (
	flightsFile   = "flights.txt"
	customersFile = "customers.txt"
	bookingsFile  = "bookings.txt"
	paymentsFile  = "payments.txt"
)

// Store reads and writes the registry as four line-delimited files in one
// directory. A missing file means no data; a malformed line aborts loading
// that file with the file name and line number in the error.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load hydrates reg through its public add operations, in dependency order:
// bookings resolve customer and flight ids, so those must land first.
func (s *Store) Load(reg *registry.Registry) error {
	if err := s.loadFlights(reg); err != nil {
		return err
	}
	if err := s.loadCustomers(reg); err != nil {
		return err
	}
	if err := s.loadBookings(reg); err != nil {
		return err
	}
	return s.loadPayments(reg)
}

func (s *Store) loadFlights(reg *registry.Registry) error {
	return s.eachLine(flightsFile, func(line string) error {
		f, err := decodeFlight(line)
		if err != nil {
			return err
		}
		_, err = reg.AddFlight(f)
		return err
	})
}

func (s *Store) loadCustomers(reg *registry.Registry) error {
	return s.eachLine(customersFile, func(line string) error {
		c, err := decodeCustomer(line)
		if err != nil {
			return err
		}
		_, err = reg.AddCustomer(c)
		return err
	})
}

// loadBookings tolerates dangling references: a booking whose customer is gone
// is skipped, a booking whose flight is gone is kept as a cancelled record
// against a soft-deleted placeholder flight so the reference stays resolvable.
func (s *Store) loadBookings(reg *registry.Registry) error {
	missingFlights := make(map[int64]bool)
	return s.eachLine(bookingsFile, func(line string) error {
		b, err := decodeBooking(line)
		if err != nil {
			return err
		}
		if !reg.CustomerExists(b.CustomerID) {
			logging.Warn("skipping booking with unknown customer",
				"booking_id", b.ID, "customer_id", b.CustomerID)
			return nil
		}
		if missingFlights[b.FlightID] || !reg.FlightExists(b.FlightID) {
			logging.Warn("booking references unknown flight, keeping it cancelled",
				"booking_id", b.ID, "flight_id", b.FlightID)
			if !missingFlights[b.FlightID] {
				placeholder := domain.NewFlight(b.FlightID, "UNKNOWN", "", "", b.BookingDate, 0, 0)
				placeholder.Deleted = true
				if _, err := reg.AddFlight(placeholder); err != nil {
					return err
				}
				missingFlights[b.FlightID] = true
			}
			b.Cancelled = true
		}
		return reg.AddBookingFromData(b)
	})
}

func (s *Store) loadPayments(reg *registry.Registry) error {
	return s.eachLine(paymentsFile, func(line string) error {
		p, err := decodePayment(line)
		if err != nil {
			return err
		}
		reg.AddPayment(p)
		return nil
	})
}

func (s *Store) eachLine(name string, handle func(line string) error) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := handle(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	return scanner.Err()
}

// Save flushes the full registry state. Every optional field is written out,
// and cancelled bookings follow the active ones in the same file.
func (s *Store) Save(reg *registry.Registry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	var flights []string
	for _, f := range reg.AllFlights() {
		flights = append(flights, encodeFlight(f))
	}
	if err := s.writeLines(flightsFile, flights); err != nil {
		return err
	}

	var customers []string
	for _, c := range reg.AllCustomers() {
		customers = append(customers, encodeCustomer(c))
	}
	if err := s.writeLines(customersFile, customers); err != nil {
		return err
	}

	var bookings []string
	for _, b := range reg.Bookings() {
		bookings = append(bookings, encodeBooking(b))
	}
	for _, b := range reg.CancelledBookings() {
		bookings = append(bookings, encodeBooking(b))
	}
	if err := s.writeLines(bookingsFile, bookings); err != nil {
		return err
	}

	var payments []string
	for _, p := range reg.Payments() {
		payments = append(payments, encodePayment(p))
	}
	return s.writeLines(paymentsFile, payments)
}

func (s *Store) writeLines(name string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(filepath.Join(s.dir, name), []byte(sb.String()), 0o644)
}
