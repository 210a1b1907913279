package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"rehearsal-service/internal/models"
	"rehearsal-service/pkg/response"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func (s *Storage) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return s.db.BeginTx(ctx, nil)
}

// #### roster ####

func (s *Storage) UpsertPersonTx(ctx context.Context, tx *sql.Tx, p *models.Person) error {
	const op = "storage.postgres.UpsertPersonTx"

	_, err := tx.ExecContext(ctx, `
		INSERT INTO roster (person_id, full_name, role, constraints)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (person_id)
		DO UPDATE
		SET full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			constraints = EXCLUDED.constraints`,
		p.ID, p.FullName, string(p.Role), p.Constraints,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	const op = "storage.postgres.GetPerson"

	var p models.Person
	err := s.db.QueryRowContext(ctx,
		`SELECT person_id, full_name, role, constraints FROM roster WHERE person_id=$1`, id).
		Scan(&p.ID, &p.FullName, &p.Role, &p.Constraints)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (s *Storage) ListPeople(ctx context.Context, role *models.Role) ([]*models.Person, error) {
	const op = "storage.postgres.ListPeople"

	query := `SELECT person_id, full_name, role, constraints FROM roster ORDER BY person_id`
	args := []any{}
	if role != nil {
		query = `SELECT person_id, full_name, role, constraints FROM roster WHERE role=$1 ORDER BY person_id`
		args = append(args, string(*role))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.FullName, &p.Role, &p.Constraints); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		people = append(people, &p)
	}

	return people, nil
}

// #### venue slots ####

func (s *Storage) CreateVenueSlot(ctx context.Context, slot *models.VenueSlot) error {
	const op = "storage.postgres.CreateVenueSlot"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO venue_slots (slot_id, venue, slot_date, start_time, end_time, booked)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slot_id)
		DO UPDATE
		SET venue = EXCLUDED.venue,
			slot_date = EXCLUDED.slot_date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			booked = EXCLUDED.booked`,
		slot.ID, slot.Venue, slot.Date, slot.Start, slot.End, slot.Booked,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetVenueSlot(ctx context.Context, id string) (*models.VenueSlot, error) {
	const op = "storage.postgres.GetVenueSlot"

	var slot models.VenueSlot
	err := s.db.QueryRowContext(ctx,
		`SELECT slot_id, venue, slot_date, start_time, end_time, booked
		FROM venue_slots WHERE slot_id=$1`, id).
		Scan(&slot.ID, &slot.Venue, &slot.Date, &slot.Start, &slot.End, &slot.Booked)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &slot, nil
}

func (s *Storage) ListVenueSlots(ctx context.Context) ([]*models.VenueSlot, error) {
	const op = "storage.postgres.ListVenueSlots"

	rows, err := s.db.QueryContext(ctx,
		`SELECT slot_id, venue, slot_date, start_time, end_time, booked
		FROM venue_slots ORDER BY slot_date, start_time`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var slots []*models.VenueSlot
	for rows.Next() {
		var slot models.VenueSlot
		if err := rows.Scan(&slot.ID, &slot.Venue, &slot.Date, &slot.Start, &slot.End, &slot.Booked); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		slots = append(slots, &slot)
	}

	return slots, nil
}

// #### dances ####

func (s *Storage) UpsertDanceTx(ctx context.Context, tx *sql.Tx, dance *models.Dance) error {
	const op = "storage.postgres.UpsertDanceTx"

	_, err := tx.ExecContext(ctx, `
		INSERT INTO dances (dance_id, dance_name, director_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (dance_id)
		DO UPDATE
		SET dance_name = EXCLUDED.dance_name,
			director_id = EXCLUDED.director_id`,
		dance.ID, dance.Name, dance.DirectorID,
	)
	if err != nil {
		sqlErr, ok := err.(*pq.Error)
		if ok && sqlErr.Code == "23503" {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM dance_cast WHERE dance_id=$1`, dance.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, personID := range dance.Cast {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO dance_cast (dance_id, person_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			dance.ID, personID,
		)
		if err != nil {
			sqlErr, ok := err.(*pq.Error)
			if ok && sqlErr.Code == "23503" {
				return fmt.Errorf("%s: %w", op, response.ErrNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) GetDance(ctx context.Context, id string) (*models.Dance, error) {
	const op = "storage.postgres.GetDance"

	var dance models.Dance
	err := s.db.QueryRowContext(ctx,
		`SELECT dance_id, dance_name, director_id FROM dances WHERE dance_id=$1`, id).
		Scan(&dance.ID, &dance.Name, &dance.DirectorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT person_id FROM dance_cast WHERE dance_id=$1 ORDER BY person_id`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var personID string
		if err := rows.Scan(&personID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		dance.Cast = append(dance.Cast, personID)
	}

	return &dance, nil
}

func (s *Storage) ListDances(ctx context.Context) ([]*models.Dance, error) {
	const op = "storage.postgres.ListDances"

	rows, err := s.db.QueryContext(ctx,
		`SELECT dance_id, dance_name, director_id FROM dances ORDER BY dance_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var dances []*models.Dance
	byID := map[string]*models.Dance{}
	for rows.Next() {
		var dance models.Dance
		if err := rows.Scan(&dance.ID, &dance.Name, &dance.DirectorID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		dances = append(dances, &dance)
		byID[dance.ID] = &dance
	}

	castRows, err := s.db.QueryContext(ctx,
		`SELECT dance_id, person_id FROM dance_cast ORDER BY dance_id, person_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer castRows.Close()

	for castRows.Next() {
		var danceID, personID string
		if err := castRows.Scan(&danceID, &personID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if dance, ok := byID[danceID]; ok {
			dance.Cast = append(dance.Cast, personID)
		}
	}

	return dances, nil
}
