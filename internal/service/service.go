package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rehearsal-service/api"
	"rehearsal-service/internal/constraint"
	"rehearsal-service/internal/lock"
	"rehearsal-service/internal/models"
	"rehearsal-service/internal/schedule"
	"rehearsal-service/internal/timeutil"
	"rehearsal-service/pkg/response"
)

type Service struct {
	store  Store
	locker lock.Locker
}

func NewService(store Store, locker lock.Locker) *Service {
	return &Service{store: store, locker: locker}
}

type Store interface {
	BeginTx(ctx context.Context) (*sql.Tx, error)

	// Roster
	UpsertPersonTx(ctx context.Context, tx *sql.Tx, p *models.Person) error
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	ListPeople(ctx context.Context, role *models.Role) ([]*models.Person, error)

	// Venue slots
	CreateVenueSlot(ctx context.Context, slot *models.VenueSlot) error
	GetVenueSlot(ctx context.Context, id string) (*models.VenueSlot, error)
	ListVenueSlots(ctx context.Context) ([]*models.VenueSlot, error)

	// Dances
	UpsertDanceTx(ctx context.Context, tx *sql.Tx, dance *models.Dance) error
	GetDance(ctx context.Context, id string) (*models.Dance, error)
	ListDances(ctx context.Context) ([]*models.Dance, error)
}

// Roster

func (s *Service) SetPeople(ctx context.Context, reqs []api.PersonRequest) (int, error) {
	const op = "service.SetPeople"

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: begin tx: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for _, req := range reqs {
		role := models.Role(req.Role)
		if role != models.RoleDirector && role != models.RoleDancer {
			return 0, fmt.Errorf("%s: invalid role %q: %w", op, req.Role, response.ErrBadRequest)
		}

		person := &models.Person{
			ID:          req.ID,
			FullName:    req.FullName,
			Role:        role,
			Constraints: req.Constraints,
		}

		if err := s.store.UpsertPersonTx(ctx, tx, person); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return len(reqs), nil
}

func (s *Service) GetPerson(ctx context.Context, id string) (*api.PersonResponse, error) {
	const op = "service.GetPerson"

	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return personResponse(person), nil
}

func (s *Service) ListPeople(ctx context.Context, role *string) ([]*api.PersonResponse, error) {
	const op = "service.ListPeople"

	var roleFilter *models.Role
	if role != nil {
		r := models.Role(*role)
		if r != models.RoleDirector && r != models.RoleDancer {
			return nil, fmt.Errorf("%s: invalid role %q: %w", op, *role, response.ErrBadRequest)
		}
		roleFilter = &r
	}

	people, err := s.store.ListPeople(ctx, roleFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.PersonResponse, 0, len(people))
	for _, p := range people {
		result = append(result, personResponse(p))
	}

	return result, nil
}

func personResponse(p *models.Person) *api.PersonResponse {
	return &api.PersonResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Role:        string(p.Role),
		Constraints: p.Constraints,
	}
}

// Venue slots

func (s *Service) CreateVenueSlot(ctx context.Context, req *api.VenueSlotRequest) (*api.VenueSlotResponse, error) {
	const op = "service.CreateVenueSlot"

	slot := &models.VenueSlot{
		ID:    req.ID,
		Venue: req.Venue,
		Date:  req.Date,
		Start: req.Start,
		End:   req.End,
	}

	// Reject slots that cannot be evaluated before they reach storage.
	if _, err := parseSlot(slot); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, response.ErrBadRequest, err)
	}

	if err := s.store.CreateVenueSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetVenueSlot(ctx, req.ID)
}

func (s *Service) GetVenueSlot(ctx context.Context, id string) (*api.VenueSlotResponse, error) {
	const op = "service.GetVenueSlot"

	slot, err := s.store.GetVenueSlot(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venueSlotResponse(slot), nil
}

func (s *Service) ListVenueSlots(ctx context.Context) ([]*api.VenueSlotResponse, error) {
	const op = "service.ListVenueSlots"

	slots, err := s.store.ListVenueSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.VenueSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, venueSlotResponse(slot))
	}

	return result, nil
}

func venueSlotResponse(slot *models.VenueSlot) *api.VenueSlotResponse {
	resp := &api.VenueSlotResponse{
		ID:     slot.ID,
		Venue:  slot.Venue,
		Date:   slot.Date,
		Start:  slot.Start,
		End:    slot.End,
		Booked: slot.Booked,
	}
	if parsed, err := parseSlot(slot); err == nil {
		resp.Weekday = parsed.Weekday
	}
	return resp
}

// Dances

func (s *Service) SetDances(ctx context.Context, reqs []api.DanceRequest) (int, error) {
	const op = "service.SetDances"

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: begin tx: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for _, req := range reqs {
		dance := &models.Dance{
			ID:         req.ID,
			Name:       req.Name,
			DirectorID: req.DirectorID,
			Cast:       req.Cast,
		}

		if err := s.store.UpsertDanceTx(ctx, tx, dance); err != nil {
			if errors.Is(err, response.ErrNotFound) {
				return 0, fmt.Errorf("%s: %w", op, response.ErrNotFound)
			}
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return len(reqs), nil
}

// parseSlot lowers a stored slot row into an evaluable schedule.Slot.
func parseSlot(slot *models.VenueSlot) (schedule.Slot, error) {
	date, err := timeutil.ParseSlotDate(slot.Date)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("slot %s: %w", slot.ID, err)
	}

	start, err := timeutil.ParseSlotTime(slot.Start)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("slot %s: %w", slot.ID, err)
	}

	end, err := timeutil.ParseSlotTime(slot.End)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("slot %s: %w", slot.ID, err)
	}

	return schedule.NewSlot(date, start, end)
}

// personConstraints parses every well-formed token a person carries.
// Invalid tokens are reported by the validation endpoints; evaluation
// skips them rather than failing the whole report.
func personConstraints(p *models.Person) []constraint.Constraint {
	var cs []constraint.Constraint
	for _, token := range p.ConstraintTokens() {
		parsed, errMsg := constraint.ValidateToken(token)
		if errMsg != "" {
			continue
		}
		cs = append(cs, parsed...)
	}
	return cs
}
