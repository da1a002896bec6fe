package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautygo/beautygo-api/pkg/domain"
)

func validAddress() Address {
	return Address{Line1: "12 Rosewood Ave", City: "Austin", State: "TX", ZipCode: "78701"}
}

func TestNewBooking(t *testing.T) {
	clientID := uuid.New()
	professionalID := uuid.New()
	serviceID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	b, err := NewBooking(clientID, professionalID, serviceID, date, "14:30", validAddress(), "ring twice", 4500, 20)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, StatusPending, b.Status())
	assert.Equal(t, clientID, b.ClientID())
	assert.Equal(t, professionalID, b.ProfessionalID())
	assert.Equal(t, serviceID, b.ServiceID())
	assert.Equal(t, "14:30", b.TimeSlot())
	assert.Equal(t, "ring twice", b.Notes())
	assert.Equal(t, int64(4500), b.TotalAmountCents())
	assert.Equal(t, int64(900), b.PlatformFeeCents())
	assert.Equal(t, int64(3600), b.ProfessionalEarningsCents())
	assert.Equal(t, int64(20), b.FeePercent())
	assert.Equal(t, int64(1), b.Version())
	assert.Nil(t, b.CompletedAt())
	assert.Nil(t, b.CancelledAt())
}

func TestNewBooking_Validation(t *testing.T) {
	clientID := uuid.New()
	professionalID := uuid.New()
	serviceID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		fn   func() (*Booking, error)
	}{
		{"nil client", func() (*Booking, error) {
			return NewBooking(uuid.Nil, professionalID, serviceID, date, "14:30", validAddress(), "", 4500, 20)
		}},
		{"nil professional", func() (*Booking, error) {
			return NewBooking(clientID, uuid.Nil, serviceID, date, "14:30", validAddress(), "", 4500, 20)
		}},
		{"zero date", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, time.Time{}, "14:30", validAddress(), "", 4500, 20)
		}},
		{"bad time slot", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, date, "2pm", validAddress(), "", 4500, 20)
		}},
		{"out of range time slot", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, date, "25:00", validAddress(), "", 4500, 20)
		}},
		{"incomplete address", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, date, "14:30", Address{Line1: "x"}, "", 4500, 20)
		}},
		{"zero amount", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, date, "14:30", validAddress(), "", 0, 20)
		}},
		{"negative amount", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, date, "14:30", validAddress(), "", -100, 20)
		}},
		{"fee percent over 100", func() (*Booking, error) {
			return NewBooking(clientID, professionalID, serviceID, date, "14:30", validAddress(), "", 4500, 101)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.True(t, domain.IsKind(err, domain.KindValidation), "got %v", err)
		})
	}
}

func TestBooking_TransitionTo(t *testing.T) {
	b := testBooking(t, uuid.New(), uuid.New(), StatusPending)

	require.NoError(t, b.TransitionTo(StatusConfirmed))
	assert.Equal(t, StatusConfirmed, b.Status())

	require.NoError(t, b.TransitionTo(StatusInProgress))
	require.NoError(t, b.TransitionTo(StatusCompleted))
	assert.Equal(t, StatusCompleted, b.Status())
	assert.NotNil(t, b.CompletedAt())

	// Terminal: no way out.
	err := b.TransitionTo(StatusCancelled)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}

func TestBooking_TransitionTo_SetsCancelledAt(t *testing.T) {
	b := testBooking(t, uuid.New(), uuid.New(), StatusPending)

	require.NoError(t, b.TransitionTo(StatusCancelled))
	assert.NotNil(t, b.CancelledAt())
	assert.Nil(t, b.CompletedAt())
}

func TestBooking_TransitionTo_SkippingStates(t *testing.T) {
	b := testBooking(t, uuid.New(), uuid.New(), StatusPending)

	err := b.TransitionTo(StatusInProgress)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))

	err = b.TransitionTo(StatusCompleted)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}

func TestBooking_UpdateNotes(t *testing.T) {
	b := testBooking(t, uuid.New(), uuid.New(), StatusConfirmed)

	require.NoError(t, b.UpdateNotes("use the side door"))
	assert.Equal(t, "use the side door", b.Notes())

	forceStatus(b, StatusCancelled)
	err := b.UpdateNotes("too late")
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
	assert.Equal(t, "use the side door", b.Notes())
}

func TestBooking_SplitCapturedAtCreation(t *testing.T) {
	// The split is computed once; walking the lifecycle never changes it.
	b := testBooking(t, uuid.New(), uuid.New(), StatusPending)
	fee, earnings := b.PlatformFeeCents(), b.ProfessionalEarningsCents()

	forceStatus(b, StatusCompleted)
	assert.Equal(t, fee, b.PlatformFeeCents())
	assert.Equal(t, earnings, b.ProfessionalEarningsCents())
}

func TestBooking_IncrementVersion(t *testing.T) {
	b := testBooking(t, uuid.New(), uuid.New(), StatusPending)
	require.Equal(t, int64(1), b.Version())

	b.IncrementVersion()
	assert.Equal(t, int64(2), b.Version())
}
