package handler

import (
	"net/http"

	"github.com/nvasile/eventbook/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, registrations *service.RegistrationService, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	eventHandler := NewEventHandler(registrations)
	registrationHandler := NewRegistrationHandler(registrations)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/events", OptionalAuth(auth, http.HandlerFunc(eventHandler.HandleList)))
	mux.Handle("GET /api/events/{id}", OptionalAuth(auth, http.HandlerFunc(eventHandler.HandleGet)))

	mux.Handle("POST /api/events/{id}/register", RequireAuth(auth, http.HandlerFunc(registrationHandler.HandleRegister)))
	mux.Handle("DELETE /api/events/{id}/register", RequireAuth(auth, http.HandlerFunc(registrationHandler.HandleCancel)))
	mux.Handle("GET /api/registrations", RequireAuth(auth, http.HandlerFunc(registrationHandler.HandleListMine)))
}
