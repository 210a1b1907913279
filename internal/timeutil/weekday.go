package timeutil

import "strings"

// weekdayNames maps every accepted weekday spelling to its canonical name.
// Note there is no lone "t": tuesday and thursday would be ambiguous.
var weekdayNames = map[string]string{
	"monday": "monday", "mon": "monday", "mo": "monday", "m": "monday",
	"tuesday": "tuesday", "tues": "tuesday", "tu": "tuesday",
	"wednesday": "wednesday", "wed": "wednesday", "we": "wednesday", "w": "wednesday",
	"thursday": "thursday", "thurs": "thursday", "th": "thursday",
	"friday": "friday", "fri": "friday", "fr": "friday", "f": "friday",
	"saturday": "saturday", "sat": "saturday", "sa": "saturday",
	"sunday": "sunday", "sun": "sunday", "su": "sunday",
}

// ParseWeekday resolves a weekday spelling ("th", "Fri") to its canonical
// lowercase name.
func ParseWeekday(word string) (string, bool) {
	day, ok := weekdayNames[strings.ToLower(word)]
	return day, ok
}
