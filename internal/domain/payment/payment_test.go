package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautygo/beautygo-api/internal/domain/booking"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

func completedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		uuid.New(),
		uuid.New(),
		uuid.New(),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		"10:00",
		booking.Address{Line1: "12 Rosewood Ave", City: "Austin", State: "TX", ZipCode: "78701"},
		"",
		4500,
		booking.DefaultPlatformFeePercent,
	)
	require.NoError(t, err)
	require.NoError(t, b.TransitionTo(booking.StatusConfirmed))
	require.NoError(t, b.TransitionTo(booking.StatusInProgress))
	require.NoError(t, b.TransitionTo(booking.StatusCompleted))
	return b
}

func TestNewFromBooking(t *testing.T) {
	b := completedBooking(t)

	p, err := NewFromBooking(b)
	require.NoError(t, err)

	assert.Equal(t, b.ID(), p.BookingID())
	assert.Equal(t, b.ClientID(), p.ClientID())
	assert.Equal(t, b.ProfessionalID(), p.ProfessionalID())
	assert.Equal(t, b.TotalAmountCents(), p.AmountCents())
	assert.Equal(t, b.PlatformFeeCents(), p.PlatformFeeCents())
	assert.Equal(t, b.ProfessionalEarningsCents(), p.ProfessionalEarningsCents())
	assert.Equal(t, MethodCash, p.Method())
	assert.Equal(t, StatusCompleted, p.Status())
}

func TestNewFromBooking_RequiresCompleted(t *testing.T) {
	b, err := booking.NewBooking(
		uuid.New(),
		uuid.New(),
		uuid.New(),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		"10:00",
		booking.Address{Line1: "12 Rosewood Ave", City: "Austin", State: "TX", ZipCode: "78701"},
		"",
		4500,
		booking.DefaultPlatformFeePercent,
	)
	require.NoError(t, err)

	_, err = NewFromBooking(b)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}
