package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehearsal-service/api"
	"rehearsal-service/internal/models"
	"rehearsal-service/pkg/response"
)

type fakeStore struct {
	people map[string]*models.Person
	slots  []*models.VenueSlot
	dances []*models.Dance
}

func (f *fakeStore) BeginTx(context.Context) (*sql.Tx, error) {
	return nil, errors.New("not supported in tests")
}

func (f *fakeStore) UpsertPersonTx(context.Context, *sql.Tx, *models.Person) error {
	return errors.New("not supported in tests")
}

func (f *fakeStore) GetPerson(_ context.Context, id string) (*models.Person, error) {
	p, ok := f.people[id]
	if !ok {
		return nil, fmt.Errorf("fake: %w", response.ErrNotFound)
	}
	return p, nil
}

func (f *fakeStore) ListPeople(_ context.Context, role *models.Role) ([]*models.Person, error) {
	var out []*models.Person
	for _, p := range f.people {
		if role == nil || p.Role == *role {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateVenueSlot(_ context.Context, slot *models.VenueSlot) error {
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeStore) GetVenueSlot(_ context.Context, id string) (*models.VenueSlot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("fake: %w", response.ErrNotFound)
}

func (f *fakeStore) ListVenueSlots(context.Context) ([]*models.VenueSlot, error) {
	return f.slots, nil
}

func (f *fakeStore) UpsertDanceTx(context.Context, *sql.Tx, *models.Dance) error {
	return errors.New("not supported in tests")
}

func (f *fakeStore) GetDance(_ context.Context, id string) (*models.Dance, error) {
	for _, d := range f.dances {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("fake: %w", response.ErrNotFound)
}

func (f *fakeStore) ListDances(context.Context) ([]*models.Dance, error) {
	return f.dances, nil
}

type fakeLocker struct {
	available bool
	locks     int
}

func (f *fakeLocker) Lock(context.Context, string, time.Duration) (bool, error) {
	f.locks++
	return f.available, nil
}

func (f *fakeLocker) Unlock(context.Context, string) error { return nil }

// newTestService wires a Thursday evening slot (Jan 15 2026, 6 to 9 PM), a
// blocked director, a partially blocked dancer and three dances.
func newTestService(lockAvailable bool) (*Service, *fakeLocker) {
	store := &fakeStore{
		people: map[string]*models.Person{
			"d1": {ID: "d1", FullName: "Pat Reyes", Role: models.RoleDirector, Constraints: "th"},
			"d2": {ID: "d2", FullName: "Sam Okafor", Role: models.RoleDirector, Constraints: "m"},
			"a":  {ID: "a", FullName: "Alex Chen", Role: models.RoleDancer, Constraints: "th until 7pm"},
			"b":  {ID: "b", FullName: "Blair Novak", Role: models.RoleDancer, Constraints: ""},
		},
		slots: []*models.VenueSlot{
			{ID: "s1", Venue: "Studio A", Date: "1/15/26", Start: "6:00 PM", End: "9:00 PM"},
			{ID: "s2", Venue: "Studio B", Date: "1/16/26", Start: "6:00 PM", End: "9:00 PM", Booked: true},
		},
		dances: []*models.Dance{
			{ID: "x", Name: "Waves", DirectorID: "d1", Cast: []string{"a", "b"}},
			{ID: "y", Name: "Ember", DirectorID: "d2", Cast: []string{"a", "b"}},
			{ID: "z", Name: "Stillness", DirectorID: "d2", Cast: []string{"b"}},
		},
	}
	locker := &fakeLocker{available: lockAvailable}
	return NewService(store, locker), locker
}

func TestCheckToken(t *testing.T) {
	s, _ := newTestService(true)

	got := s.CheckToken("m, w 2-4")
	assert.True(t, got.Valid)
	assert.Equal(t, []string{"Monday", "Wednesday 2:00 pm-4:00 pm"}, got.Constraints)

	got = s.CheckToken("th 5-2pm")
	assert.False(t, got.Valid)
	assert.Equal(t, "th 5-2pm: Start time 17:00:00 must be before end time 14:00:00.", got.Error)
}

func TestValidateRecords(t *testing.T) {
	records := []api.ConstraintRecord{
		{ID: "p1", Constraints: "m | w 2-4"},
		{ID: "p2", Constraints: ""},
		{ID: "p3", Constraints: "th 5-2pm | f"},
	}

	errs, stats := ValidateRecords(records)

	assert.Equal(t, api.ValidationStats{
		TotalRows:     3,
		EmptyRows:     1,
		TotalTokens:   4,
		ValidTokens:   3,
		InvalidTokens: 1,
	}, stats)

	require.Len(t, errs, 1)
	assert.Equal(t, "p3", errs[0].EntityID)
	assert.Equal(t, 3, errs[0].Row)
	assert.Equal(t, 1, errs[0].TokenNum)
	assert.Equal(t, "th 5-2pm", errs[0].Token)
	assert.Contains(t, errs[0].Error, "must be before end time")
}

func TestValidateRoster(t *testing.T) {
	s, _ := newTestService(true)

	errs, stats, err := s.ValidateRoster(context.Background())
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 4, stats.TotalRows)
	assert.Equal(t, 1, stats.EmptyRows)
	assert.Equal(t, 3, stats.ValidTokens)
}

func TestConflictReport(t *testing.T) {
	s, _ := newTestService(true)

	entries, err := s.ConflictReport(context.Background())
	require.NoError(t, err)

	// Only d1 collides with the Thursday slot; d2 is blocked on Mondays.
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "s1", e.SlotID)
	assert.Equal(t, "d1", e.DirectorID)
	assert.Equal(t, "Pat Reyes", e.Director)
	assert.Equal(t, []string{"Thursday"}, e.Reasons)
	assert.Equal(t, []string{"Waves"}, e.Dances)
	assert.Equal(t, "Jan 15, 2026", e.Date)
	assert.Equal(t, "6:00 pm - 9:00 pm", e.TimeSlot)
}

func TestGenerateCatalog(t *testing.T) {
	s, locker := newTestService(true)

	jobID, catalog, err := s.GenerateCatalog(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, jobID)
	assert.Equal(t, 1, locker.locks)

	// The booked slot is skipped.
	require.Len(t, catalog, 1)
	slot := catalog[0]
	assert.Equal(t, "s1", slot.SlotID)

	// Waves: director d1 has an all-day Thursday constraint.
	assert.Equal(t, []string{"Waves"}, slot.RDBlocked)

	// Stillness: its only cast member is free all evening.
	assert.Equal(t, []string{"Stillness"}, slot.ConflictFree)

	// Ember: Alex is blocked until 7 PM, so half the cast is missing.
	require.Len(t, slot.CastConflict, 1)
	assert.Equal(t, "Ember", slot.CastConflict[0].Dance)
	assert.InDelta(t, 50, slot.CastConflict[0].AttendancePct, 0.01)
	assert.Equal(t, []string{"Alex Chen"}, slot.CastConflict[0].Missing)
}

func TestGenerateCatalogLocked(t *testing.T) {
	s, _ := newTestService(false)

	_, _, err := s.GenerateCatalog(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, response.ErrLocked)
}

func TestAvailability(t *testing.T) {
	s, _ := newTestService(true)

	people, common, err := s.Availability(context.Background(), "s1", "y")
	require.NoError(t, err)

	require.Len(t, people, 2)
	assert.Equal(t, "a", people[0].PersonID)
	assert.Equal(t, []api.AvailabilityWindow{{Start: "7:00 pm", End: "9:00 pm"}}, people[0].Windows)
	assert.Equal(t, "b", people[1].PersonID)
	assert.Equal(t, []api.AvailabilityWindow{{Start: "6:00 pm", End: "9:00 pm"}}, people[1].Windows)

	assert.Equal(t, []api.AvailabilityWindow{{Start: "7:00 pm", End: "9:00 pm"}}, common)
}

func TestAvailabilityUnknownSlot(t *testing.T) {
	s, _ := newTestService(true)

	_, _, err := s.Availability(context.Background(), "missing", "")
	assert.ErrorIs(t, err, response.ErrNotFound)
}
