package constraint

import (
	"time"

	"rehearsal-service/internal/timeutil"
)

// transform lowers the syntax tree into typed constraints, applying time
// normalization, year windowing and calendar validation. Any failure is a
// *SemanticError.
func transform(clauses []clauseNode) ([]Constraint, error) {
	out := make([]Constraint, 0, len(clauses))
	for _, clause := range clauses {
		c, err := transformClause(clause)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func transformClause(clause clauseNode) (Constraint, error) {
	if clause.day != "" {
		if clause.rng == nil {
			return DayOfWeek{Day: clause.day}, nil
		}
		start, end, err := resolveRange(clause.rng)
		if err != nil {
			return nil, err
		}
		return TimeOnDay{Day: clause.day, Start: start, End: end}, nil
	}

	date, err := resolveDate(clause.date)
	if err != nil {
		return nil, err
	}
	switch {
	case clause.dateEnd != nil:
		end, err := resolveDate(clause.dateEnd)
		if err != nil {
			return nil, err
		}
		if end.Before(date) {
			return nil, semanticErrf("Invalid date range: start %s must not be after end %s.", date, end)
		}
		return DateRange{Start: date, End: end}, nil
	case clause.rng != nil:
		start, end, err := resolveRange(clause.rng)
		if err != nil {
			return nil, err
		}
		return TimeOnDate{Date: date, Start: start, End: end}, nil
	default:
		return Date{Date: date}, nil
	}
}

// resolveRange normalizes a range node into a (start, end) pair, expanding
// the until/after forms to the day boundaries.
func resolveRange(rng *rangeNode) (timeutil.MilitaryTime, timeutil.MilitaryTime, error) {
	switch rng.kind {
	case rangeUntil:
		end, err := resolveTime(rng.end)
		if err != nil {
			return 0, 0, err
		}
		return timeutil.DayStart, end, nil
	case rangeAfter:
		start, err := resolveTime(rng.start)
		if err != nil {
			return 0, 0, err
		}
		return start, timeutil.DayEnd, nil
	default:
		start, err := resolveTime(rng.start)
		if err != nil {
			return 0, 0, err
		}
		end, err := resolveTime(rng.end)
		if err != nil {
			return 0, 0, err
		}
		if start >= end {
			return 0, 0, semanticErrf("Start time %s must be before end time %s.", start.Clock(), end.Clock())
		}
		return start, end, nil
	}
}

func resolveTime(t *timeNode) (timeutil.MilitaryTime, error) {
	hour, minute := t.hour, t.minute
	// A bare 3-4 digit literal reads as military time: "1500" is 15:00.
	// With a meridiem the literal stays a 12-hour value so that "1500pm"
	// still fails the 1..12 check.
	if t.meridiem == "" && minute == 0 && hour >= 100 {
		hour, minute = t.hour/100, t.hour%100
	}
	mt, err := timeutil.ParseMilitary(hour, minute, t.meridiem)
	if err != nil {
		return 0, &SemanticError{Msg: err.Error()}
	}
	return mt, nil
}

func resolveDate(n *dateNode) (timeutil.Date, error) {
	if n.month < time.January || n.month > time.December {
		return timeutil.Date{}, semanticErrf("Invalid month: '%d' must be between 1 and 12.", int(n.month))
	}
	date, err := timeutil.NewDate(timeutil.WindowYear(n.year), n.month, n.day)
	if err != nil {
		return timeutil.Date{}, &SemanticError{Msg: err.Error()}
	}
	return date, nil
}
