package constraint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehearsal-service/internal/timeutil"
)

func date(t *testing.T, year int, month time.Month, day int) timeutil.Date {
	t.Helper()
	d, err := timeutil.NewDate(year, month, day)
	require.NoError(t, err)
	return d
}

func TestParseWeekdayConstraints(t *testing.T) {
	cases := []struct {
		in   string
		want []Constraint
	}{
		{"m", []Constraint{DayOfWeek{Day: "monday"}}},
		{"Tues", []Constraint{DayOfWeek{Day: "tuesday"}}},
		{"th", []Constraint{DayOfWeek{Day: "thursday"}}},
		{"saturday", []Constraint{DayOfWeek{Day: "saturday"}}},
		{"tues 2-4", []Constraint{TimeOnDay{Day: "tuesday", Start: 1400, End: 1600}}},
		{"m 2:30-4", []Constraint{TimeOnDay{Day: "monday", Start: 1430, End: 1600}}},
		{"w 9am-11am", []Constraint{TimeOnDay{Day: "wednesday", Start: 900, End: 1100}}},
		{"f after 5pm", []Constraint{TimeOnDay{Day: "friday", Start: 1700, End: 2359}}},
		{"f after 5", []Constraint{TimeOnDay{Day: "friday", Start: 1700, End: 2359}}},
		{"m until 3pm", []Constraint{TimeOnDay{Day: "monday", Start: 0, End: 1500}}},
		{"m before 3", []Constraint{TimeOnDay{Day: "monday", Start: 0, End: 1500}}},
		{"su 12pm-1pm", []Constraint{TimeOnDay{Day: "sunday", Start: 1200, End: 1300}}},
		{"sa 12am-1am", []Constraint{TimeOnDay{Day: "saturday", Start: 0, End: 100}}},
		{"th 8-10", []Constraint{TimeOnDay{Day: "thursday", Start: 800, End: 1000}}},
		{"th 19-21", []Constraint{TimeOnDay{Day: "thursday", Start: 1900, End: 2100}}},
		{"m 1500-1700", []Constraint{TimeOnDay{Day: "monday", Start: 1500, End: 1700}}},
		{"m 230-400", []Constraint{TimeOnDay{Day: "monday", Start: 1430, End: 1600}}},
		{"th 9am-1100", []Constraint{TimeOnDay{Day: "thursday", Start: 900, End: 1100}}},
		{"w until 2130", []Constraint{TimeOnDay{Day: "wednesday", Start: 0, End: 2130}}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDateConstraints(t *testing.T) {
	jan2 := date(t, 2026, time.January, 2)
	jan5 := date(t, 2026, time.January, 5)

	cases := []struct {
		in   string
		want []Constraint
	}{
		{"Jan 2 26", []Constraint{Date{Date: jan2}}},
		{"Jan 2 2026", []Constraint{Date{Date: jan2}}},
		{"1/2/26", []Constraint{Date{Date: jan2}}},
		{"1/2/2026", []Constraint{Date{Date: jan2}}},
		{"Jan 2 26-Jan 5 2026", []Constraint{DateRange{Start: jan2, End: jan5}}},
		{"1/2/26-1/5/26", []Constraint{DateRange{Start: jan2, End: jan5}}},
		{"Jan 2 26 2-4", []Constraint{TimeOnDate{Date: jan2, Start: 1400, End: 1600}}},
		{"1/2/26 after 5pm", []Constraint{TimeOnDate{Date: jan2, Start: 1700, End: 2359}}},
		{"Jan 2 26 until 10am", []Constraint{TimeOnDate{Date: jan2, Start: 0, End: 1000}}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseGroupKeepsOrder(t *testing.T) {
	got, err := Parse("m, w 2-4, f after 5pm")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, DayOfWeek{Day: "monday"}, got[0])
	assert.Equal(t, TimeOnDay{Day: "wednesday", Start: 1400, End: 1600}, got[1])
	assert.Equal(t, TimeOnDay{Day: "friday", Start: 1700, End: 2359}, got[2])
}

func TestParseMixedGroup(t *testing.T) {
	got, err := Parse("th, Jan 2 26, 1/3/26-1/5/26")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, DayOfWeek{Day: "thursday"}, got[0])
	assert.Equal(t, Date{Date: date(t, 2026, time.January, 2)}, got[1])
	assert.Equal(t, DateRange{
		Start: date(t, 2026, time.January, 3),
		End:   date(t, 2026, time.January, 5),
	}, got[2])
}

func TestParseIsCaseInsensitive(t *testing.T) {
	a, err := Parse("TH 5-7PM")
	require.NoError(t, err)
	b, err := Parse("th 5-7pm")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestConstraintEquality(t *testing.T) {
	a, err := Parse("tues 2-4")
	require.NoError(t, err)
	b, err := Parse("tues 2-4")
	require.NoError(t, err)
	assert.Equal(t, a, b, "equal inputs parse to structurally equal values")

	c, err := Parse("tues 2-5")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
