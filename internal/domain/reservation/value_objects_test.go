//go:build unit

package reservation_test

import (
	"testing"

	"eatery-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat12Hour(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "morning hour", input: "05:00", expected: "5:00 AM"},
		{name: "late morning", input: "11:45", expected: "11:45 AM"},
		{name: "midnight", input: "00:00", expected: "12:00 AM"},
		{name: "just past midnight", input: "00:30", expected: "12:30 AM"},
		{name: "noon", input: "12:00", expected: "12:00 PM"},
		{name: "just past noon", input: "12:15", expected: "12:15 PM"},
		{name: "afternoon hour", input: "17:00", expected: "5:00 PM"},
		{name: "last hour of the day", input: "23:59", expected: "11:59 PM"},
		{name: "malformed word", input: "bogus", expected: "bogus"},
		{name: "missing minutes", input: "17", expected: "17"},
		{name: "non-numeric minutes", input: "17:xx", expected: "17:xx"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.Format12Hour(tc.input))
		})
	}
}

func TestNewTimeOfDay(t *testing.T) {
	t.Run("accepts valid 24-hour values", func(t *testing.T) {
		for _, input := range []string{"00:00", "09:30", "12:00", "23:59"} {
			v, err := reservation.NewTimeOfDay(input)
			require.NoError(t, err, input)
			assert.Equal(t, input, v.String())
		}
	})

	t.Run("rejects out-of-range and malformed values", func(t *testing.T) {
		for _, input := range []string{"24:00", "12:60", "-1:00", "noon", "12", ""} {
			_, err := reservation.NewTimeOfDay(input)
			assert.Error(t, err, input)
		}
	})
}

func TestNewDate(t *testing.T) {
	t.Run("accepts a calendar date", func(t *testing.T) {
		v, err := reservation.NewDate("2024-07-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-07-01", v.String())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, input := range []string{"2024-13-01", "2024-02-30", "July 1st", ""} {
			_, err := reservation.NewDate(input)
			assert.Error(t, err, input)
		}
	})
}

func TestNewGuestCount(t *testing.T) {
	t.Run("accepts positive party sizes", func(t *testing.T) {
		v, err := reservation.NewGuestCount(1)
		require.NoError(t, err)
		assert.Equal(t, 1, v.Value())
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		for _, n := range []int{0, -1, -40} {
			_, err := reservation.NewGuestCount(n)
			assert.Error(t, err)
		}
	})
}
