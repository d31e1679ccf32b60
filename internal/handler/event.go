package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nvasile/eventbook/internal/domain"
	"github.com/nvasile/eventbook/internal/service"
)

// EventHandler handles event catalog HTTP requests.
type EventHandler struct {
	registrations *service.RegistrationService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(registrations *service.RegistrationService) *EventHandler {
	return &EventHandler{registrations: registrations}
}

// HandleList returns the full event catalog.
// GET /api/events
// Response: {"events": [...]}; each event carries a "registered" flag when the
// request is authenticated.
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.registrations.ListEvents(r.Context())
	if err != nil {
		serviceError(w, err, "list events")
		return
	}

	dtos := toEventDTOs(events)
	if user := UserFromContext(r.Context()); user != nil {
		for i := range dtos {
			registered, err := h.registrations.IsRegistered(r.Context(), user.ID, dtos[i].ID)
			if err != nil {
				serviceError(w, err, "check registration for event list")
				return
			}
			dtos[i].Registered = &registered
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": dtos})
}

// HandleGet returns a single event.
// GET /api/events/{id}
// Response: {"event": {...}} or 404.
func (h *EventHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	event, err := h.registrations.GetEvent(r.Context(), eventID)
	if err != nil {
		serviceError(w, err, "get event")
		return
	}

	dto := toEventDTO(event)
	if user := UserFromContext(r.Context()); user != nil {
		registered, err := h.registrations.IsRegistered(r.Context(), user.ID, event.ID)
		if err != nil {
			serviceError(w, err, "check registration for event")
			return
		}
		dto.Registered = &registered
	}

	writeJSON(w, http.StatusOK, map[string]any{"event": dto})
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// serviceError maps service-layer errors onto HTTP statuses.
func serviceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, domain.ErrStoreUnavailable):
		slog.Error(logMsg, "error", err)
		writeError(w, http.StatusServiceUnavailable, "The service is temporarily unavailable. Please try again.")
	default:
		slog.Error(logMsg, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
