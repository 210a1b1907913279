package api

// Constraint checking

type TokenCheckRequest struct {
	Token string `json:"token"`
}

type TokenCheckResponse struct {
	Token       string   `json:"token"`
	Valid       bool     `json:"valid"`
	Constraints []string `json:"constraints,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Bulk validation

type ConstraintRecord struct {
	ID          string `json:"id"`
	Constraints string `json:"constraints"`
}

type ValidationError struct {
	EntityID string `json:"entity_id"`
	Row      int    `json:"row"`
	TokenNum int    `json:"token_num"`
	Token    string `json:"token"`
	Error    string `json:"error"`
}

type ValidationStats struct {
	TotalRows     int `json:"total_rows"`
	EmptyRows     int `json:"empty_rows"`
	TotalTokens   int `json:"total_tokens"`
	ValidTokens   int `json:"valid_tokens"`
	InvalidTokens int `json:"invalid_tokens"`
}

// Roster

type PersonRequest struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	Constraints string `json:"constraints"`
}

type PersonResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	Constraints string `json:"constraints"`
}

// Venue slots

type VenueSlotRequest struct {
	ID    string `json:"id"`
	Venue string `json:"venue"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type VenueSlotResponse struct {
	ID      string `json:"id"`
	Venue   string `json:"venue"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Booked  bool   `json:"booked"`
}

// Dances

type DanceRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	DirectorID string   `json:"director_id"`
	Cast       []string `json:"cast"`
}

type DanceResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	DirectorID string   `json:"director_id"`
	Cast       []string `json:"cast"`
}

// Conflict reporting

type ConflictEntry struct {
	SlotID     string   `json:"slot_id"`
	Venue      string   `json:"venue"`
	Date       string   `json:"date"`
	TimeSlot   string   `json:"time_slot"`
	DirectorID string   `json:"director_id"`
	Director   string   `json:"director"`
	Reasons    []string `json:"reasons"`
	Dances     []string `json:"dances,omitempty"`
}

// Catalog

type CatalogSlot struct {
	SlotID       string        `json:"slot_id"`
	Venue        string        `json:"venue"`
	Date         string        `json:"date"`
	TimeSlot     string        `json:"time_slot"`
	ConflictFree []string      `json:"conflict_free"`
	CastConflict []CastedDance `json:"cast_conflict"`
	RDBlocked    []string      `json:"rd_blocked"`
}

type CastedDance struct {
	Dance         string   `json:"dance"`
	AttendancePct float64  `json:"attendance_pct"`
	Missing       []string `json:"missing"`
}

// Availability

type AvailabilityWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PersonAvailability struct {
	PersonID string               `json:"person_id"`
	FullName string               `json:"full_name"`
	Windows  []AvailabilityWindow `json:"windows"`
}
