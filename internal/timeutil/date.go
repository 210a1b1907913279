package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component. The zero value is not a
// valid date; construct through NewDate so day-of-month validity is checked.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date and rejects combinations that do not exist on the
// calendar, such as Feb 29 in a non-leap year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("Invalid date: month is out of range")
	}
	if day < 1 {
		return Date{}, fmt.Errorf("Invalid date: day is out of range for month")
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("Invalid date: day is out of range for month")
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// After reports whether d falls strictly after o.
func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }

// Weekday returns the lowercase weekday name, e.g. "monday".
func (d Date) Weekday() string {
	return strings.ToLower(d.Time().Weekday().String())
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display renders the date the way catalogs show it, e.g. "Jan 02, 2026".
func (d Date) Display() string {
	return d.Time().Format("Jan 02, 2006")
}

// DisplayMonthDay renders the month and day only, e.g. "Jan 02". Used for
// the start of a date range where the year comes from the end.
func (d Date) DisplayMonthDay() string {
	return d.Time().Format("Jan 02")
}

// WindowYear widens two-digit years into the 2000s: 26 becomes 2026.
// Four-digit years pass through unchanged.
func WindowYear(y int) int {
	if y < 100 {
		return 2000 + y
	}
	return y
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseMonth resolves a month word ("jan", "January") to a time.Month.
func ParseMonth(word string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(word)]
	return m, ok
}

// slotDateLayouts cover the forms venue spreadsheets use for slot dates.
var slotDateLayouts = []string{"1/2/2006", "1/2/06", "1-2-06", "1-2-2006", "2006-01-02"}

// ParseSlotDate parses a venue slot date such as "11-15-25" or "2025-11-15".
func ParseSlotDate(s string) (Date, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range slotDateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}
