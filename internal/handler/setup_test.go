package handler_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/nvasile/eventbook/internal/handler"
	"github.com/nvasile/eventbook/internal/repository/sqlite"
	"github.com/nvasile/eventbook/internal/service"
)

const testJWTSecret = "test-secret-key-for-handler-tests"

func newTestServices(t *testing.T) (*service.AuthService, *service.RegistrationService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	registrations := service.NewRegistrationService(db.Events(), db.Registrations())
	return auth, registrations, db
}

// newTestHandler assembles the mux with the same middleware stack main wires up.
func newTestHandler(t *testing.T) (http.Handler, *service.RegistrationService, *sqlite.DB) {
	t.Helper()
	auth, registrations, db := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, registrations, false)

	return handler.SecurityHeaders(handler.RequireSameOrigin(mux)), registrations, db
}
