package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nvasile/eventbook/internal/domain"
)

// EventRepository implements domain.EventRepository using SQLite.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new SQLite-backed EventRepository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db.SqlDB}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO events (title, description, date, location, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.Title, event.Description, event.Date, event.Location, now,
	)
	if err != nil {
		return storeError("insert event", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	event.ID = id
	event.CreatedAt = now
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event := &domain.Event{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, date, location, created_at
		 FROM events WHERE id = ?`, id,
	).Scan(&event.ID, &event.Title, &event.Description, &event.Date, &event.Location, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("query event by id", err)
	}
	return event, nil
}

// List returns all events in insertion order.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, date, location, created_at
		 FROM events ORDER BY id`)
	if err != nil {
		return nil, storeError("list events", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate events", err)
	}
	return events, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, storeError("count events", err)
	}
	return count, nil
}
