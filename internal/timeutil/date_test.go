package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	d, err := NewDate(2026, time.January, 2)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", d.String())
	assert.Equal(t, "friday", d.Weekday())
	assert.Equal(t, "Jan 02, 2026", d.Display())
	assert.Equal(t, "Jan 02", d.DisplayMonthDay())

	// 2024 is a leap year, 2023 is not.
	_, err = NewDate(2024, time.February, 29)
	require.NoError(t, err)
	_, err = NewDate(2023, time.February, 29)
	require.EqualError(t, err, "Invalid date: day is out of range for month")

	_, err = NewDate(2026, time.April, 31)
	assert.Error(t, err)
	_, err = NewDate(2026, time.January, 0)
	assert.Error(t, err)
	_, err = NewDate(2026, time.Month(13), 1)
	assert.Error(t, err)
}

func TestDateOrdering(t *testing.T) {
	a, err := NewDate(2026, time.January, 2)
	require.NoError(t, err)
	b, err := NewDate(2026, time.January, 5)
	require.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, a, Date{Year: 2026, Month: time.January, Day: 2})
}

func TestWindowYear(t *testing.T) {
	assert.Equal(t, 2026, WindowYear(26))
	assert.Equal(t, 2000, WindowYear(0))
	assert.Equal(t, 2099, WindowYear(99))
	assert.Equal(t, 2026, WindowYear(2026))
	assert.Equal(t, 1999, WindowYear(1999))
}

func TestParseMonth(t *testing.T) {
	for word, want := range map[string]time.Month{
		"jan": time.January, "January": time.January,
		"sept": time.September, "DEC": time.December,
	} {
		got, ok := ParseMonth(word)
		require.True(t, ok, word)
		assert.Equal(t, want, got, word)
	}

	_, ok := ParseMonth("janvier")
	assert.False(t, ok)
}

func TestParseSlotDate(t *testing.T) {
	want := Date{Year: 2025, Month: time.November, Day: 15}
	for _, in := range []string{"11/15/2025", "11/15/25", "11-15-25", "2025-11-15"} {
		got, err := ParseSlotDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSlotDate("next tuesday")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]string{
		"m": "monday", "Mon": "monday",
		"tues": "tuesday", "tu": "tuesday",
		"W": "wednesday", "wed": "wednesday",
		"th": "thursday", "THURS": "thursday",
		"f": "friday", "fri": "friday",
		"sa": "saturday", "sun": "sunday",
	}
	for in, want := range cases {
		got, ok := ParseWeekday(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	// A bare "t" is ambiguous between tuesday and thursday.
	_, ok := ParseWeekday("t")
	assert.False(t, ok)
}
