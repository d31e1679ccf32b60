package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nvasile/eventbook/internal/domain"
)

// RegistrationRepository implements domain.RegistrationRepository using SQLite.
// The registrations table carries UNIQUE(user_id, event_id); that constraint,
// not application-level checks, is what guarantees at most one registration
// per pair under concurrent inserts.
type RegistrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new SQLite-backed RegistrationRepository.
func NewRegistrationRepository(db *DB) *RegistrationRepository {
	return &RegistrationRepository{db: db.SqlDB}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (user_id, event_id, registered_at) VALUES (?, ?, ?)`,
		reg.UserID, reg.EventID, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyRegistered
		}
		return storeError("insert registration", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	reg.ID = id
	reg.RegisteredAt = now
	return nil
}

func (r *RegistrationRepository) GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, event_id, registered_at
		 FROM registrations WHERE user_id = ? AND event_id = ?`, userID, eventID,
	).Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("query registration", err)
	}
	return reg, nil
}

// Delete removes the registration for the pair if one exists. It reports
// whether a row was actually removed, so callers can keep cancellation
// idempotent without a prior lookup.
func (r *RegistrationRepository) Delete(ctx context.Context, userID, eventID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM registrations WHERE user_id = ? AND event_id = ?`, userID, eventID)
	if err != nil {
		return false, storeError("delete registration", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListByUser returns the user's registrations joined with their events, in
// registration insertion order.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.UserRegistration, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.user_id, r.event_id, r.registered_at,
		 e.id, e.title, e.description, e.date, e.location, e.created_at
		 FROM registrations r
		 JOIN events e ON r.event_id = e.id
		 WHERE r.user_id = ?
		 ORDER BY r.id`, userID)
	if err != nil {
		return nil, storeError("list registrations", err)
	}
	defer rows.Close()

	var regs []domain.UserRegistration
	for rows.Next() {
		var ur domain.UserRegistration
		if err := rows.Scan(
			&ur.Registration.ID, &ur.Registration.UserID, &ur.Registration.EventID, &ur.Registration.RegisteredAt,
			&ur.Event.ID, &ur.Event.Title, &ur.Event.Description, &ur.Event.Date, &ur.Event.Location, &ur.Event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, ur)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate registrations", err)
	}
	return regs, nil
}
