// Package timeutil holds the time and date primitives shared by the
// constraint parser, the interval algebra and the scheduling layer.
//
// Times of day are carried as military integers (hour*100+minute) so that
// 5:30 PM is 1730 and midnight is 0. Minute arithmetic converts to minutes
// since midnight and back.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MilitaryTime is a time of day encoded as hour*100+minute, e.g. 1730.
type MilitaryTime int

const (
	// DayStart is the earliest representable time of day.
	DayStart MilitaryTime = 0
	// DayEnd is the latest representable time of day, 11:59 PM.
	DayEnd MilitaryTime = 2359
)

// Hour returns the hour component, 0..23.
func (t MilitaryTime) Hour() int { return int(t) / 100 }

// Minute returns the minute component, 0..59.
func (t MilitaryTime) Minute() int { return int(t) % 100 }

// Minutes returns the value as minutes since midnight.
func (t MilitaryTime) Minutes() int { return t.Hour()*60 + t.Minute() }

// FromMinutes converts minutes since midnight back to a MilitaryTime.
func FromMinutes(m int) MilitaryTime {
	return MilitaryTime((m/60)*100 + m%60)
}

// Clock renders the value as HH:MM:SS, the form used in error messages.
func (t MilitaryTime) Clock() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

// Format12 renders the value as lowercase 12-hour text, e.g. "5:30 pm".
func (t MilitaryTime) Format12() string {
	h := t.Hour()
	meridiem := "am"
	if h >= 12 {
		meridiem = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, t.Minute(), meridiem)
}

func (t MilitaryTime) String() string { return strconv.Itoa(int(t)) }

// ParseMilitary normalizes a raw hour/minute pair into a MilitaryTime.
//
// With a meridiem ("am"/"pm") the hour must fall in 1..12; 12am maps to 0
// and pm hours gain 12. Without a meridiem, bare hours 1..7 are assumed to
// be afternoon rehearsal times and gain 12, hour 24 wraps to the end of the
// day, and anything above 24 is rejected.
func ParseMilitary(hour, minute int, meridiem string) (MilitaryTime, error) {
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("Invalid time: minute '%d' must be between 0 and 59.", minute)
	}

	switch strings.ToLower(meridiem) {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("Invalid 12-hour format: Hour '%d' must be between 1 and 12.", hour)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("Invalid 12-hour format: Hour '%d' must be between 1 and 12.", hour)
		}
		if hour != 12 {
			hour += 12
		}
	case "":
		if hour < 0 {
			return 0, fmt.Errorf("Invalid 24-hour format: Hour '%d' cannot be negative.", hour)
		}
		if hour > 24 {
			return 0, fmt.Errorf("Invalid 24-hour format: Hour '%d' cannot be greater than 24.", hour)
		}
		if hour == 24 {
			if minute > 0 {
				return 0, fmt.Errorf("Invalid 24-hour format: '24:%02d' is past the end of the day.", minute)
			}
			return DayEnd, nil
		}
		// Bare 1..7 reads as afternoon: "2-4" means 2 PM to 4 PM.
		if hour >= 1 && hour <= 7 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("Invalid meridiem: '%s' must be am or pm.", meridiem)
	}

	return MilitaryTime(hour*100 + minute), nil
}

// wallClockLayouts are tried in order; the 12-hour forms go first so that
// "9:00 AM" is not mistaken for a 24-hour reading.
var wallClockLayouts = []string{"3:04 PM", "3 PM", "15:04", "15"}

// ParseWallClock parses display-oriented times such as "9:00 AM", "9 PM",
// "17:00" or "9".
func ParseWallClock(s string) (MilitaryTime, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range wallClockLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return MilitaryTime(t.Hour()*100 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time %q", s)
}

// ParseSlotTime parses a venue slot boundary, which may be wall-clock text
// ("6:00 PM") or a bare military integer ("1800").
func ParseSlotTime(s string) (MilitaryTime, error) {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil && len(trimmed) >= 3 {
		t := MilitaryTime(n)
		if t < 0 || t > DayEnd || t.Minute() > 59 {
			return 0, fmt.Errorf("military time %q out of range", s)
		}
		return t, nil
	}
	return ParseWallClock(trimmed)
}
