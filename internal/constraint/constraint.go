// Package constraint parses free-text unavailability tokens such as
// "m, w 2-4, f after 5pm" into typed constraints, and formats them back
// into human-readable text.
//
// A token is a comma-separated group; parsing either yields a non-empty
// ordered list of constraints or fails as a whole. The parser is a
// hand-written recursive descent over a small token stream, so syntax
// errors can point at the exact offending position.
package constraint

import (
	"fmt"

	"rehearsal-service/internal/timeutil"
)

// Constraint is one parsed unavailability rule. The five implementations
// below are the complete set; consumers dispatch with a type switch.
// All variants are immutable value types with structural equality.
type Constraint interface {
	fmt.Stringer
	isConstraint()
}

// DayOfWeek blocks an entire weekday, every week.
type DayOfWeek struct {
	Day string // canonical lowercase name, e.g. "thursday"
}

// TimeOnDay blocks a time window on a weekday, every week.
type TimeOnDay struct {
	Day   string
	Start timeutil.MilitaryTime
	End   timeutil.MilitaryTime
}

// Date blocks a single calendar date entirely.
type Date struct {
	Date timeutil.Date
}

// DateRange blocks an inclusive span of calendar dates entirely.
type DateRange struct {
	Start timeutil.Date
	End   timeutil.Date
}

// TimeOnDate blocks a time window on a single calendar date.
type TimeOnDate struct {
	Date  timeutil.Date
	Start timeutil.MilitaryTime
	End   timeutil.MilitaryTime
}

func (DayOfWeek) isConstraint()  {}
func (TimeOnDay) isConstraint()  {}
func (Date) isConstraint()       {}
func (DateRange) isConstraint()  {}
func (TimeOnDate) isConstraint() {}

func (c DayOfWeek) String() string {
	return titleDay(c.Day)
}

func (c TimeOnDay) String() string {
	return formatWindow(titleDay(c.Day), c.Start, c.End)
}

func (c Date) String() string {
	return c.Date.Display()
}

func (c DateRange) String() string {
	return fmt.Sprintf("%s - %s", c.Start.DisplayMonthDay(), c.End.Display())
}

func (c TimeOnDate) String() string {
	return formatWindow(c.Date.Display(), c.Start, c.End)
}

// formatWindow renders a subject with its time window, collapsing the
// open-ended sentinels into "before"/"after" phrasing. A window spanning
// the whole day renders as the subject alone.
func formatWindow(subject string, start, end timeutil.MilitaryTime) string {
	switch {
	case start == timeutil.DayStart && end >= timeutil.DayEnd:
		return subject
	case start == timeutil.DayStart:
		return fmt.Sprintf("%s before %s", subject, end.Format12())
	case end >= timeutil.DayEnd:
		return fmt.Sprintf("%s after %s", subject, start.Format12())
	default:
		return fmt.Sprintf("%s %s-%s", subject, start.Format12(), end.Format12())
	}
}

func titleDay(day string) string {
	if day == "" {
		return day
	}
	return string(day[0]-'a'+'A') + day[1:]
}
