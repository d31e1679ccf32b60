package handler

import (
	"net/http"

	"github.com/nvasile/eventbook/internal/service"
)

// RegistrationHandler handles event registration HTTP requests. All routes
// here require an authenticated user.
type RegistrationHandler struct {
	registrations *service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(registrations *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// HandleRegister registers the current user for an event.
// POST /api/events/{id}/register
// Response: 201 {"registration": {...}} or 404 for an unknown event.
// Registering again for the same event returns the existing registration.
func (h *RegistrationHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	eventID, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	reg, err := h.registrations.Register(r.Context(), user.ID, eventID)
	if err != nil {
		serviceError(w, err, "register for event")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"registration": toRegistrationDTO(reg),
	})
}

// HandleCancel cancels the current user's registration for an event.
// DELETE /api/events/{id}/register
// Response: 204 No Content, whether or not a registration existed.
func (h *RegistrationHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	eventID, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	if err := h.registrations.Cancel(r.Context(), user.ID, eventID); err != nil {
		serviceError(w, err, "cancel registration")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListMine lists the current user's registrations with their events.
// GET /api/registrations
// Response: {"registrations": [...]}; an empty array when there are none.
func (h *RegistrationHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	regs, err := h.registrations.ListForUser(r.Context(), user.ID)
	if err != nil {
		serviceError(w, err, "list registrations")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"registrations": toUserRegistrationDTOs(regs)})
}
