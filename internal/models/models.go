package models

import "strings"

// Role distinguishes the people whose constraints gate scheduling.
type Role string

const (
	RoleDirector Role = "director"
	RoleDancer   Role = "dancer"
)

// Person is one roster row. Constraints holds the raw pipe-separated
// unavailability tokens exactly as entered; parsing happens on demand so a
// bad token never blocks loading the roster.
type Person struct {
	ID          string `db:"person_id"`
	FullName    string `db:"full_name"`
	Role        Role   `db:"role"`
	Constraints string `db:"constraints"`
}

// ConstraintTokens splits the raw constraint text into individual tokens.
func (p Person) ConstraintTokens() []string {
	return SplitTokens(p.Constraints)
}

// SplitTokens splits pipe-separated constraint text into trimmed tokens.
// Blank segments are dropped.
func SplitTokens(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, "|") {
		if t := strings.TrimSpace(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// VenueSlot is one bookable rehearsal window at a venue. The date and times
// keep their raw spreadsheet form and are parsed when evaluated.
type VenueSlot struct {
	ID     string `db:"slot_id"`
	Venue  string `db:"venue"`
	Date   string `db:"slot_date"`  // e.g. "11-15-25" or "2025-11-15"
	Start  string `db:"start_time"` // e.g. "6:00 PM" or "1800"
	End    string `db:"end_time"`
	Booked bool   `db:"booked"`
}

// Dance is one piece with a director and a cast of dancer IDs.
type Dance struct {
	ID         string `db:"dance_id"`
	Name       string `db:"dance_name"`
	DirectorID string `db:"director_id"`
	Cast       []string
}
