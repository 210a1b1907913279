package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"rehearsal-service/api"
	"rehearsal-service/internal/constraint"
	"rehearsal-service/internal/interval"
	"rehearsal-service/internal/models"
	"rehearsal-service/internal/schedule"
	"rehearsal-service/pkg/response"
)

// ConflictReport lists, per slot, every director whose constraints collide
// with it and the dances that would be affected. Slots whose date or time
// cannot be parsed are skipped; they never block the rest of the report.
func (s *Service) ConflictReport(ctx context.Context) ([]api.ConflictEntry, error) {
	const op = "service.ConflictReport"

	slots, err := s.store.ListVenueSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	directorRole := models.RoleDirector
	directors, err := s.store.ListPeople(ctx, &directorRole)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dances, err := s.store.ListDances(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dancesByDirector := map[string][]string{}
	for _, dance := range dances {
		dancesByDirector[dance.DirectorID] = append(dancesByDirector[dance.DirectorID], dance.Name)
	}

	var entries []api.ConflictEntry
	for _, raw := range slots {
		slot, err := parseSlot(raw)
		if err != nil {
			continue
		}

		for _, director := range directors {
			var reasons []string
			for _, c := range personConstraints(director) {
				if schedule.Conflicts(c, slot) {
					reasons = append(reasons, c.String())
				}
			}
			if len(reasons) == 0 {
				continue
			}

			entries = append(entries, api.ConflictEntry{
				SlotID:     raw.ID,
				Venue:      raw.Venue,
				Date:       slot.Date.Display(),
				TimeSlot:   slot.Interval().String(),
				DirectorID: director.ID,
				Director:   director.FullName,
				Reasons:    reasons,
				Dances:     dancesByDirector[director.ID],
			})
		}
	}

	return entries, nil
}

// GenerateCatalog builds the full scheduling catalog: for every open slot,
// which dances fit cleanly, which fit with missing cast, and which are off
// the table because their director is blocked. A redis lock keeps two
// generations from running at once.
func (s *Service) GenerateCatalog(ctx context.Context) (string, []api.CatalogSlot, error) {
	const op = "service.GenerateCatalog"

	locked, err := s.locker.Lock(ctx, "catalog:generate", 30*time.Second)
	if err != nil {
		return "", nil, fmt.Errorf("%s: lock error: %w", op, err)
	}
	if !locked {
		return "", nil, fmt.Errorf("%s: %w", op, response.ErrLocked)
	}
	defer func() {
		_ = s.locker.Unlock(ctx, "catalog:generate")
	}()

	slots, err := s.store.ListVenueSlots(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	dances, err := s.store.ListDances(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	people, err := s.store.ListPeople(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	roster := make(map[string]*models.Person, len(people))
	for _, p := range people {
		roster[p.ID] = p
	}

	var catalog []api.CatalogSlot
	for _, raw := range slots {
		if raw.Booked {
			continue
		}

		slot, err := parseSlot(raw)
		if err != nil {
			continue
		}

		entry := api.CatalogSlot{
			SlotID:   raw.ID,
			Venue:    raw.Venue,
			Date:     slot.Date.Display(),
			TimeSlot: slot.Interval().String(),
		}

		for _, dance := range dances {
			if director, ok := roster[dance.DirectorID]; ok && personBlocked(director, slot) {
				entry.RDBlocked = append(entry.RDBlocked, dance.Name)
				continue
			}

			pct, missing := castAttendance(roster, dance.Cast, slot)
			if pct == 100 {
				entry.ConflictFree = append(entry.ConflictFree, dance.Name)
				continue
			}

			entry.CastConflict = append(entry.CastConflict, api.CastedDance{
				Dance:         dance.Name,
				AttendancePct: pct,
				Missing:       missing,
			})
		}

		sort.Strings(entry.ConflictFree)
		sort.Strings(entry.RDBlocked)
		sort.Slice(entry.CastConflict, func(i, j int) bool {
			a, b := entry.CastConflict[i], entry.CastConflict[j]
			if a.AttendancePct != b.AttendancePct {
				return a.AttendancePct > b.AttendancePct
			}
			return a.Dance < b.Dance
		})

		catalog = append(catalog, entry)
	}

	return uuid.NewString(), catalog, nil
}

// personBlocked reports whether any of the person's constraints touch the
// slot at all.
func personBlocked(p *models.Person, slot schedule.Slot) bool {
	for _, c := range personConstraints(p) {
		if schedule.Conflicts(c, slot) {
			return true
		}
	}
	return false
}

// castAttendance returns the percentage of the cast free for the whole
// slot, plus the names of whoever is not. An empty cast counts as full
// attendance.
func castAttendance(roster map[string]*models.Person, cast []string, slot schedule.Slot) (float64, []string) {
	if len(cast) == 0 {
		return 100, nil
	}

	present := 0
	var missing []string
	for _, id := range cast {
		p, ok := roster[id]
		if !ok || !personBlocked(p, slot) {
			present++
			continue
		}
		missing = append(missing, p.FullName)
	}

	sort.Strings(missing)
	return float64(present) / float64(len(cast)) * 100, missing
}

// Availability reports the free windows inside a slot for each relevant
// person, plus the window(s) everyone shares. With a dance ID the group is
// that dance's cast; otherwise it is every dancer on the roster.
func (s *Service) Availability(ctx context.Context, slotID, danceID string) ([]api.PersonAvailability, []api.AvailabilityWindow, error) {
	const op = "service.Availability"

	raw, err := s.store.GetVenueSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	slot, err := parseSlot(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	var group []*models.Person
	if danceID != "" {
		dance, err := s.store.GetDance(ctx, danceID)
		if err != nil {
			if errors.Is(err, response.ErrNotFound) {
				return nil, nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
			}
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		for _, id := range dance.Cast {
			p, err := s.store.GetPerson(ctx, id)
			if err != nil {
				if errors.Is(err, response.ErrNotFound) {
					continue
				}
				return nil, nil, fmt.Errorf("%s: %w", op, err)
			}
			group = append(group, p)
		}
	} else {
		dancerRole := models.RoleDancer
		group, err = s.store.ListPeople(ctx, &dancerRole)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	people := make([]api.PersonAvailability, 0, len(group))
	members := make([][]constraint.Constraint, 0, len(group))
	for _, p := range group {
		cs := personConstraints(p)
		members = append(members, cs)
		people = append(people, api.PersonAvailability{
			PersonID: p.ID,
			FullName: p.FullName,
			Windows:  toWindows(schedule.AvailabilityWindows(slot, cs)),
		})
	}

	common := toWindows(schedule.GroupAvailability(slot, members))
	return people, common, nil
}

func toWindows(ivs []interval.TimeInterval) []api.AvailabilityWindow {
	windows := make([]api.AvailabilityWindow, 0, len(ivs))
	for _, iv := range ivs {
		windows = append(windows, api.AvailabilityWindow{
			Start: iv.Start.Format12(),
			End:   iv.End.Format12(),
		})
	}
	return windows
}
