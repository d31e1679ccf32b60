package domain

import (
	"context"
	"time"
)

// Registration links one user to one event. At most one registration may exist
// for a given (user, event) pair; the store enforces this with a UNIQUE
// constraint.
type Registration struct {
	ID           int64
	UserID       int64
	EventID      int64
	RegisteredAt time.Time
}

// UserRegistration is a registration joined with its event, as rendered on the
// "my registrations" page.
type UserRegistration struct {
	Registration Registration
	Event        Event
}

// RegistrationRepository defines persistence operations for registrations.
type RegistrationRepository interface {
	// Create inserts a registration. It returns ErrAlreadyRegistered when a
	// registration for the same (user, event) pair exists.
	Create(ctx context.Context, reg *Registration) error
	GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*Registration, error)
	// Delete removes the registration for the pair if one exists and reports
	// whether a row was removed.
	Delete(ctx context.Context, userID, eventID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]UserRegistration, error)
}
