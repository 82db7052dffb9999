package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayment_MaskedCard(t *testing.T) {
	testCases := []struct {
		name     string
		card     string
		expected string
	}{
		{"full card shows last four", "4111111111111111", "**** **** **** 1111"},
		{"short value is fully masked", "1234", "****"},
		{"empty value is fully masked", "", "****"},
		{"surrounding spaces are ignored", " 5500005555555559 ", "**** **** **** 5559"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Payment{CardNumber: tc.card}
			assert.Equal(t, tc.expected, p.MaskedCard())
		})
	}
}

func TestBooking_Refund(t *testing.T) {
	b := Booking{Fee: 100}

	assert.Equal(t, 90.0, b.Refund(10))
	assert.Equal(t, 0.0, b.Refund(150))
	assert.Equal(t, 100.0, b.Refund(0))
}
