//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/idgen"
	"cinema-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildCustomer()
		require.NoError(t, err)

		assert.Equal(t, "Jack Sparrow", actual.Name())
		assert.Equal(t, "jack@blackpearl.example", actual.Email())
		assert.Equal(t, "4242", actual.CardLast4())
		assert.Equal(t, "**** **** **** 4242", actual.MaskedCard())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", mutate: func(b *builder.BookingBuilder) { b.WithCustomerName("") }, errIs: booking.ErrEmptyCustomerName},
			{name: "whitespace only name", mutate: func(b *builder.BookingBuilder) { b.WithCustomerName("   ") }, errIs: booking.ErrEmptyCustomerName},
			{
				name:   "maximum length name",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomerName(strings.Repeat("я", booking.MaxCustomerNameLength)) },
			},
			{
				name:   "name exceeds maximum length",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomerName(strings.Repeat("a", booking.MaxCustomerNameLength+1)) },
				errIs:  booking.ErrCustomerNameTooLong,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing email", mutate: func(b *builder.BookingBuilder) { b.WithEmail("") }, errIs: booking.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.BookingBuilder) { b.WithEmail("jack.example") }, errIs: booking.ErrInvalidEmail},
			{name: "display name form", mutate: func(b *builder.BookingBuilder) { b.WithEmail("Jack <jack@example.com>") }, errIs: booking.ErrInvalidEmail},
			{name: "surrounding spaces are trimmed", mutate: func(b *builder.BookingBuilder) { b.WithEmail("  jack@example.com ") }},
		})
	})

	t.Run("card tail validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "three digits", mutate: func(b *builder.BookingBuilder) { b.WithCardLast4("424") }, errIs: booking.ErrInvalidCardLast4},
			{name: "five digits", mutate: func(b *builder.BookingBuilder) { b.WithCardLast4("42424") }, errIs: booking.ErrInvalidCardLast4},
			{name: "letters", mutate: func(b *builder.BookingBuilder) { b.WithCardLast4("42a2") }, errIs: booking.ErrInvalidCardLast4},
			{name: "full-width digits", mutate: func(b *builder.BookingBuilder) { b.WithCardLast4("４２４２") }, errIs: booking.ErrInvalidCardLast4},
			{name: "leading zeros", mutate: func(b *builder.BookingBuilder) { b.WithCardLast4("0007") }},
		})
	})
}

func TestFactory(t *testing.T) {
	bookedAt := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	newFactory := func() *booking.Factory {
		return booking.NewFactory(idgen.NewSequence("BK"), clock.NewMockClock(bookedAt))
	}

	t.Run("total is unit price times seat count", func(t *testing.T) {
		customer, err := builder.NewBookingBuilder().BuildCustomer()
		require.NoError(t, err)

		receipt, err := newFactory().NewReceipt("s1", 3500, []string{"R1-1", "R1-2"}, customer)
		require.NoError(t, err)

		assert.Equal(t, "BK-000001", receipt.ID())
		assert.Equal(t, "s1", receipt.ShowtimeID())
		assert.Equal(t, []string{"R1-1", "R1-2"}, receipt.Seats())
		assert.Equal(t, int64(7000), receipt.Total())
		assert.Equal(t, customer, receipt.Customer())
		assert.Equal(t, bookedAt, receipt.BookedAt())
	})

	t.Run("each receipt gets a fresh id", func(t *testing.T) {
		customer, err := builder.NewBookingBuilder().BuildCustomer()
		require.NoError(t, err)
		f := newFactory()

		first, err := f.NewReceipt("s1", 3500, []string{"R1-1"}, customer)
		require.NoError(t, err)
		second, err := f.NewReceipt("s1", 3500, []string{"R1-2"}, customer)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("receipt does not alias caller slices", func(t *testing.T) {
		customer, err := builder.NewBookingBuilder().BuildCustomer()
		require.NoError(t, err)

		seats := []string{"R2-1"}
		receipt, err := newFactory().NewReceipt("s1", 3500, seats, customer)
		require.NoError(t, err)

		seats[0] = "R9-9"
		got := receipt.Seats()
		got[0] = "R8-8"
		assert.Equal(t, []string{"R2-1"}, receipt.Seats())
	})

	t.Run("rejects empty seats and negative price", func(t *testing.T) {
		customer, err := builder.NewBookingBuilder().BuildCustomer()
		require.NoError(t, err)

		_, err = newFactory().NewReceipt("s1", 3500, nil, customer)
		require.ErrorIs(t, err, booking.ErrNoSeats)

		_, err = newFactory().NewReceipt("s1", -1, []string{"R1-1"}, customer)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(c.mutate).BuildCustomer()

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
