// Package schedule evaluates parsed constraints against concrete rehearsal
// slots: does a constraint conflict, which part of the slot does it block,
// and what availability remains for a person or a whole cast.
package schedule

import (
	"fmt"

	"rehearsal-service/internal/constraint"
	"rehearsal-service/internal/interval"
	"rehearsal-service/internal/timeutil"
)

// Slot is one concrete rehearsal window at a venue.
type Slot struct {
	Date    timeutil.Date
	Weekday string // canonical lowercase name, derived from Date
	Start   timeutil.MilitaryTime
	End     timeutil.MilitaryTime
}

// NewSlot builds a Slot, deriving the weekday and checking the window.
func NewSlot(date timeutil.Date, start, end timeutil.MilitaryTime) (Slot, error) {
	if _, err := interval.New(start, end); err != nil {
		return Slot{}, fmt.Errorf("slot %s: %w", date, err)
	}
	return Slot{Date: date, Weekday: date.Weekday(), Start: start, End: end}, nil
}

// Interval returns the slot's own time window.
func (s Slot) Interval() interval.TimeInterval {
	return interval.TimeInterval{Start: s.Start, End: s.End}
}

// Conflicts reports whether a constraint blocks any part of the slot.
// Weekly constraints match on weekday, dated constraints on the calendar
// date; timed variants additionally require time overlap with the slot.
func Conflicts(c constraint.Constraint, slot Slot) bool {
	switch c := c.(type) {
	case constraint.DayOfWeek:
		return c.Day == slot.Weekday
	case constraint.TimeOnDay:
		return c.Day == slot.Weekday && overlaps(c.Start, c.End, slot)
	case constraint.Date:
		return c.Date == slot.Date
	case constraint.DateRange:
		return !slot.Date.Before(c.Start) && !slot.Date.After(c.End)
	case constraint.TimeOnDate:
		return c.Date == slot.Date && overlaps(c.Start, c.End, slot)
	default:
		return false
	}
}

func overlaps(start, end timeutil.MilitaryTime, slot Slot) bool {
	return max(start, slot.Start) < min(end, slot.End)
}

// BlockedIntervals returns the parts of the slot a constraint blocks,
// clipped to the slot bounds. A non-conflicting constraint blocks nothing;
// all-day variants block the whole slot.
func BlockedIntervals(c constraint.Constraint, slot Slot) []interval.TimeInterval {
	if !Conflicts(c, slot) {
		return nil
	}
	switch c := c.(type) {
	case constraint.TimeOnDay:
		return clip(c.Start, c.End, slot)
	case constraint.TimeOnDate:
		return clip(c.Start, c.End, slot)
	default:
		return []interval.TimeInterval{slot.Interval()}
	}
}

func clip(start, end timeutil.MilitaryTime, slot Slot) []interval.TimeInterval {
	return interval.Intersect(interval.TimeInterval{Start: start, End: end}, slot.Interval())
}

// AvailabilityWindows returns what remains of the slot after removing
// everything the person's constraints block, as a sorted disjoint set.
func AvailabilityWindows(slot Slot, cs []constraint.Constraint) []interval.TimeInterval {
	var blocked []interval.TimeInterval
	for _, c := range cs {
		blocked = append(blocked, BlockedIntervals(c, slot)...)
	}
	return interval.Subtract(slot.Interval(), blocked)
}

// GroupAvailability intersects the availability of every member, stopping
// early once no common window can survive.
func GroupAvailability(slot Slot, members [][]constraint.Constraint) []interval.TimeInterval {
	common := []interval.TimeInterval{slot.Interval()}
	for _, cs := range members {
		common = interval.IntersectSets(common, AvailabilityWindows(slot, cs))
		if len(common) == 0 {
			return nil
		}
	}
	return common
}
