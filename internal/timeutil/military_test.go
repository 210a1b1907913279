package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMilitary(t *testing.T) {
	cases := []struct {
		name     string
		hour     int
		minute   int
		meridiem string
		want     MilitaryTime
	}{
		{"noon", 12, 0, "pm", 1200},
		{"midnight", 12, 0, "am", 0},
		{"afternoon pm", 5, 30, "pm", 1730},
		{"morning am", 9, 15, "am", 915},
		{"one pm", 1, 0, "pm", 1300},
		{"eleven pm", 11, 59, "pm", 2359},
		{"bare 1 reads pm", 1, 0, "", 1300},
		{"bare 7 reads pm", 7, 0, "", 1900},
		{"bare 8 passes through", 8, 0, "", 800},
		{"bare 0 passes through", 0, 30, "", 30},
		{"bare 13 passes through", 13, 0, "", 1300},
		{"bare 24 wraps to day end", 24, 0, "", 2359},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMilitary(tc.hour, tc.minute, tc.meridiem)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMilitaryErrors(t *testing.T) {
	cases := []struct {
		name     string
		hour     int
		minute   int
		meridiem string
		wantMsg  string
	}{
		{"13 pm", 13, 0, "pm", "Invalid 12-hour format: Hour '13' must be between 1 and 12."},
		{"0 am", 0, 0, "am", "Invalid 12-hour format: Hour '0' must be between 1 and 12."},
		{"25 bare", 25, 0, "", "Invalid 24-hour format: Hour '25' cannot be greater than 24."},
		{"minute 61", 10, 61, "", "Invalid time: minute '61' must be between 0 and 59."},
		{"24:30", 24, 30, "", "Invalid 24-hour format: '24:30' is past the end of the day."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMilitary(tc.hour, tc.minute, tc.meridiem)
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestMilitaryTimeAccessors(t *testing.T) {
	mt := MilitaryTime(1730)
	assert.Equal(t, 17, mt.Hour())
	assert.Equal(t, 30, mt.Minute())
	assert.Equal(t, 1050, mt.Minutes())
	assert.Equal(t, mt, FromMinutes(1050))
	assert.Equal(t, "17:30:00", mt.Clock())
	assert.Equal(t, "5:30 pm", mt.Format12())
	assert.Equal(t, "12:00 am", MilitaryTime(0).Format12())
	assert.Equal(t, "12:05 pm", MilitaryTime(1205).Format12())
}

func TestFormat12RoundTrip(t *testing.T) {
	for _, mt := range []MilitaryTime{0, 30, 915, 1200, 1205, 1730, 2359} {
		got, err := ParseWallClock(mt.Format12())
		require.NoError(t, err, "reparsing %s", mt.Format12())
		assert.Equal(t, mt, got)
	}
}

func TestParseWallClock(t *testing.T) {
	cases := []struct {
		in   string
		want MilitaryTime
	}{
		{"9:00 AM", 900},
		{"9 PM", 2100},
		{"12:30 PM", 1230},
		{"17:00", 1700},
		{"9", 900},
		{" 6:15 pm ", 1815},
	}
	for _, tc := range cases {
		got, err := ParseWallClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseWallClock("half past nine")
	assert.Error(t, err)
}

func TestParseSlotTime(t *testing.T) {
	got, err := ParseSlotTime("1800")
	require.NoError(t, err)
	assert.Equal(t, MilitaryTime(1800), got)

	got, err = ParseSlotTime("6:00 PM")
	require.NoError(t, err)
	assert.Equal(t, MilitaryTime(1800), got)

	_, err = ParseSlotTime("2470")
	assert.Error(t, err)
}
