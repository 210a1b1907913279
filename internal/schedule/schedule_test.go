package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehearsal-service/internal/constraint"
	"rehearsal-service/internal/interval"
	"rehearsal-service/internal/timeutil"
)

// slot returns a Thursday evening rehearsal, Jan 15 2026, 6 PM to 9 PM.
func testSlot(t *testing.T) Slot {
	t.Helper()
	d, err := timeutil.NewDate(2026, time.January, 15)
	require.NoError(t, err)
	s, err := NewSlot(d, 1800, 2100)
	require.NoError(t, err)
	require.Equal(t, "thursday", s.Weekday)
	return s
}

func parseOne(t *testing.T, text string) constraint.Constraint {
	t.Helper()
	cs, err := constraint.Parse(text)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	return cs[0]
}

func TestNewSlotRejectsInvertedWindow(t *testing.T) {
	d, err := timeutil.NewDate(2026, time.January, 15)
	require.NoError(t, err)
	_, err = NewSlot(d, 2100, 1800)
	assert.Error(t, err)
}

func TestConflicts(t *testing.T) {
	slot := testSlot(t)
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"same weekday", "th", true},
		{"other weekday", "m", false},
		{"timed overlap", "th 5-7pm", true},
		{"timed before slot", "th 2-4", false},
		{"timed touching start", "th 4-6pm", false},
		{"after overlapping", "th after 8pm", true},
		{"until overlapping", "th until 7pm", true},
		{"timed right day wrong weekday", "m 6-8pm", false},
		{"exact date", "Jan 15 26", true},
		{"other date", "Jan 16 26", false},
		{"range containing date", "Jan 10 26-Jan 20 26", true},
		{"range boundary start", "Jan 15 26-Jan 20 26", true},
		{"range boundary end", "Jan 10 26-Jan 15 26", true},
		{"range missing date", "Jan 16 26-Jan 20 26", false},
		{"timed date overlap", "Jan 15 26 7-9pm", true},
		{"timed date no overlap", "Jan 15 26 2-4", false},
		{"timed wrong date", "Jan 16 26 7-9pm", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Conflicts(parseOne(t, tc.in), slot))
		})
	}
}

func TestBlockedIntervals(t *testing.T) {
	slot := testSlot(t)

	assert.Nil(t, BlockedIntervals(parseOne(t, "m"), slot))

	whole := []interval.TimeInterval{{Start: 1800, End: 2100}}
	assert.Equal(t, whole, BlockedIntervals(parseOne(t, "th"), slot))
	assert.Equal(t, whole, BlockedIntervals(parseOne(t, "Jan 15 26"), slot))
	assert.Equal(t, whole, BlockedIntervals(parseOne(t, "Jan 10 26-Jan 20 26"), slot))

	// Timed constraints are clipped to the slot bounds.
	assert.Equal(t, []interval.TimeInterval{{Start: 1800, End: 1900}},
		BlockedIntervals(parseOne(t, "th 5-7pm"), slot))
	assert.Equal(t, []interval.TimeInterval{{Start: 2000, End: 2100}},
		BlockedIntervals(parseOne(t, "Jan 15 26 after 8pm"), slot))
}

func TestAvailabilityWindows(t *testing.T) {
	slot := testSlot(t)

	free := AvailabilityWindows(slot, nil)
	assert.Equal(t, []interval.TimeInterval{{Start: 1800, End: 2100}}, free)

	cs, err := constraint.Parse("th until 7pm, th after 8pm")
	require.NoError(t, err)
	assert.Equal(t, []interval.TimeInterval{{Start: 1900, End: 2000}},
		AvailabilityWindows(slot, cs))

	blockedAll, err := constraint.Parse("th")
	require.NoError(t, err)
	assert.Nil(t, AvailabilityWindows(slot, blockedAll))
}

func TestGroupAvailability(t *testing.T) {
	slot := testSlot(t)

	a, err := constraint.Parse("th until 7pm")
	require.NoError(t, err)
	b, err := constraint.Parse("th after 8pm")
	require.NoError(t, err)

	got := GroupAvailability(slot, [][]constraint.Constraint{a, b})
	assert.Equal(t, []interval.TimeInterval{{Start: 1900, End: 2000}}, got)

	// One fully blocked member empties the intersection.
	c, err := constraint.Parse("Jan 15 26")
	require.NoError(t, err)
	assert.Nil(t, GroupAvailability(slot, [][]constraint.Constraint{a, c, b}))

	// No members means the whole slot is free.
	assert.Equal(t, []interval.TimeInterval{{Start: 1800, End: 2100}},
		GroupAvailability(slot, nil))
}
