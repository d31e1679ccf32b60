package domain

import (
	"context"
	"time"
)

// Event is a published happening users can register for. Events are created by
// administrative seeding and are immutable afterwards.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Location    string
	CreatedAt   time.Time
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Count(ctx context.Context) (int, error)
}
