package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvasile/eventbook/internal/domain"
)

// RegistrationService owns the event catalog and registration records. It
// enforces the at-most-one-registration-per-(user, event) invariant and is the
// single writer of registrations; front ends only ever go through it.
type RegistrationService struct {
	events        domain.EventRepository
	registrations domain.RegistrationRepository
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(events domain.EventRepository, registrations domain.RegistrationRepository) *RegistrationService {
	return &RegistrationService{events: events, registrations: registrations}
}

// ListEvents returns all events in insertion order.
func (s *RegistrationService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

// GetEvent returns an event by ID, or domain.ErrNotFound.
func (s *RegistrationService) GetEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	return s.events.GetByID(ctx, eventID)
}

// IsRegistered reports whether the user holds a registration for the event.
func (s *RegistrationService) IsRegistered(ctx context.Context, userID, eventID int64) (bool, error) {
	_, err := s.registrations.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check registration: %w", err)
	}
	return true, nil
}

// Register registers the user for the event and returns the registration.
// Registering twice is not an error: the existing registration is returned
// unchanged. The store's UNIQUE(user_id, event_id) constraint is the safety
// mechanism under concurrent calls; the lookup below is only a fast path, and
// a constraint conflict on insert is resolved by re-reading the winning row.
// Returns domain.ErrNotFound when the event does not exist.
func (s *RegistrationService) Register(ctx context.Context, userID, eventID int64) (*domain.Registration, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	existing, err := s.registrations.GetByUserAndEvent(ctx, userID, eventID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	reg := &domain.Registration{UserID: userID, EventID: eventID}
	if err := s.registrations.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			// Lost the race to a concurrent register; the row that won is
			// this user's registration, so return it as success.
			return s.registrations.GetByUserAndEvent(ctx, userID, eventID)
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	return reg, nil
}

// Cancel removes the user's registration for the event. Cancelling when no
// registration exists is a no-op, not an error.
func (s *RegistrationService) Cancel(ctx context.Context, userID, eventID int64) error {
	if _, err := s.registrations.Delete(ctx, userID, eventID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

// ListForUser returns the user's registrations joined with their events, in
// registration order. A user with no registrations gets an empty slice.
func (s *RegistrationService) ListForUser(ctx context.Context, userID int64) ([]domain.UserRegistration, error) {
	return s.registrations.ListByUser(ctx, userID)
}

// SeedSampleEvents inserts the sample catalog when the events table is empty.
// Safe to call on every startup.
func (s *RegistrationService) SeedSampleEvents(ctx context.Context) error {
	count, err := s.events.Count(ctx)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []domain.Event{
		{
			Title:       "Tech Conference",
			Description: "Annual tech conf",
			Location:    "Bangalore",
			Date:        time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "AI Summit",
			Description: "Talks on AI and ML",
			Location:    "Hyderabad",
			Date:        time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range samples {
		if err := s.events.Create(ctx, &samples[i]); err != nil {
			return fmt.Errorf("seed event %q: %w", samples[i].Title, err)
		}
	}
	return nil
}
