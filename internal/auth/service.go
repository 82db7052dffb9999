package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// ErrInvalidCredentials is returned for any login failure; callers cannot tell
// a missing account from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CustomerDirectory is the slice of the registry the authenticator needs.
type CustomerDirectory interface {
	Customers() []domain.Customer
}

// Session is an issued login token. Admin sessions come from the configured
// admin credentials, customer sessions from a cleartext password match against
// the active customer list. Tokens expire by TTL.
type Session struct {
	Token      string
	CustomerID int64
	Admin      bool
}

type Service struct {
	customers     CustomerDirectory
	sessions      *gocache.Cache
	ttl           time.Duration
	adminEmail    string
	adminPassword string
}

func NewService(customers CustomerDirectory, adminEmail, adminPassword string, ttl time.Duration) *Service {
	return &Service{
		customers:     customers,
		sessions:      gocache.New(ttl, ttl),
		ttl:           ttl,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Login checks the admin credentials first, then scans active customers for a
// matching email and password. The comparison is verbatim cleartext equality,
// which is the modeled behavior of this system, not a security feature.
func (s *Service) Login(email, password string) (*Session, error) {
	if s.adminEmail != "" && email == s.adminEmail && password == s.adminPassword {
		return s.issue(0, true), nil
	}
	for _, c := range s.customers.Customers() {
		if c.Email == email && c.Password == password {
			return s.issue(c.ID, false), nil
		}
	}
	return nil, ErrInvalidCredentials
}

// SessionByToken resolves a live session; expired tokens are gone.
func (s *Service) SessionByToken(token string) (*Session, bool) {
	v, ok := s.sessions.Get(token)
	if !ok {
		return nil, false
	}
	session := v.(Session)
	return &session, true
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

func (s *Service) issue(customerID int64, admin bool) *Session {
	session := Session{Token: uuid.NewString(), CustomerID: customerID, Admin: admin}
	s.sessions.Set(session.Token, session, s.ttl)
	return &session
}
