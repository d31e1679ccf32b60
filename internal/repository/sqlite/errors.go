package sqlite

import (
	"fmt"
	"strings"

	"github.com/nvasile/eventbook/internal/domain"
)

// isUniqueConstraintError checks if the error is a SQLite unique constraint
// violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}

// storeError wraps an unexpected driver error so callers can recognize the
// store as unreachable via errors.Is(err, domain.ErrStoreUnavailable).
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
