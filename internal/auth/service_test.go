package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahatoankit/flightbook/internal/domain"
)

type staticDirectory []domain.Customer

func (d staticDirectory) Customers() []domain.Customer { return d }

func testDirectory() staticDirectory {
	return staticDirectory{
		{ID: 1, Name: "Asha", Email: "asha@example.com", Password: "secret"},
		{ID: 2, Name: "Bir", Email: "bir@example.com", Password: "hunter2"},
	}
}

func TestService_Login_Admin(t *testing.T) {
	s := NewService(testDirectory(), "admin@example.com", "adminpw", time.Minute)

	session, err := s.Login("admin@example.com", "adminpw")
	require.NoError(t, err)
	assert.True(t, session.Admin)
	assert.Equal(t, int64(0), session.CustomerID)
	assert.NotEmpty(t, session.Token)
}

func TestService_Login_Customer(t *testing.T) {
	s := NewService(testDirectory(), "admin@example.com", "adminpw", time.Minute)

	session, err := s.Login("bir@example.com", "hunter2")
	require.NoError(t, err)
	assert.False(t, session.Admin)
	assert.Equal(t, int64(2), session.CustomerID)
}

func TestService_Login_Invalid(t *testing.T) {
	s := NewService(testDirectory(), "admin@example.com", "adminpw", time.Minute)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret"},
		{"wrong password", "asha@example.com", "wrong"},
		{"admin with wrong password", "admin@example.com", "secret"},
		{"empty credentials", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Login(tc.email, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestService_Login_NoAdminConfigured(t *testing.T) {
	s := NewService(testDirectory(), "", "", time.Minute)

	// Empty credentials never match a disabled admin account.
	_, err := s.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_SessionByToken(t *testing.T) {
	s := NewService(testDirectory(), "admin@example.com", "adminpw", time.Minute)

	session, err := s.Login("asha@example.com", "secret")
	require.NoError(t, err)

	got, ok := s.SessionByToken(session.Token)
	require.True(t, ok)
	assert.Equal(t, session.CustomerID, got.CustomerID)

	_, ok = s.SessionByToken("no-such-token")
	assert.False(t, ok)
}

func TestService_SessionExpires(t *testing.T) {
	s := NewService(testDirectory(), "admin@example.com", "adminpw", 10*time.Millisecond)

	session, err := s.Login("asha@example.com", "secret")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, ok := s.SessionByToken(session.Token)
	assert.False(t, ok)
}

func TestService_Logout(t *testing.T) {
	s := NewService(testDirectory(), "admin@example.com", "adminpw", time.Minute)

	session, err := s.Login("asha@example.com", "secret")
	require.NoError(t, err)

	s.Logout(session.Token)
	_, ok := s.SessionByToken(session.Token)
	assert.False(t, ok)
}
