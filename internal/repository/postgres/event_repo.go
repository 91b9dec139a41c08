package postgres

import (
	"context"

	"attendancehub/internal/domain"
)

const eventColumns = `id, organizer_id, title, description, location_name, location_lat, location_long, location_address,
		start_time, end_time, attendee_limit, created_at, updated_at`

type eventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{
		store: store,
	}
}

func scanEvent(row scanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description,
		&e.Location.Name, &e.Location.Lat, &e.Location.Long, &e.Location.Address,
		&e.StartTime, &e.EndTime, &e.AttendeeLimit, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, organizer_id, title, description, location_name, location_lat, location_long,
			location_address, start_time, end_time, attendee_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.store.Set(ctx, query,
		e.ID, e.OrganizerID, e.Title, e.Description,
		e.Location.Name, e.Location.Lat, e.Location.Long, e.Location.Address,
		e.StartTime, e.EndTime, e.AttendeeLimit, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	return scanEvent(r.store.GetOne(ctx, query, id))
}

func (r *eventRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE organizer_id = $1
		ORDER BY start_time DESC
	`
	rows, err := r.store.Get(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
