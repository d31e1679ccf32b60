package handler

import (
	"time"

	"github.com/nvasile/eventbook/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// EventDTO is the JSON representation of an event. Registered is only
// populated for authenticated requests.
type EventDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Registered  *bool  `json:"registered,omitempty"`
}

func toEventDTO(e *domain.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(time.RFC3339),
		Location:    e.Location,
	}
}

func toEventDTOs(events []domain.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i := range events {
		dtos[i] = toEventDTO(&events[i])
	}
	return dtos
}

// RegistrationDTO is the JSON representation of a registration.
type RegistrationDTO struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	EventID      int64  `json:"eventId"`
	RegisteredAt string `json:"registeredAt"`
}

func toRegistrationDTO(r *domain.Registration) RegistrationDTO {
	return RegistrationDTO{
		ID:           r.ID,
		UserID:       r.UserID,
		EventID:      r.EventID,
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
	}
}

// UserRegistrationDTO is a registration joined with its event, as listed on
// the "my registrations" page.
type UserRegistrationDTO struct {
	Registration RegistrationDTO `json:"registration"`
	Event        EventDTO        `json:"event"`
}

func toUserRegistrationDTOs(regs []domain.UserRegistration) []UserRegistrationDTO {
	dtos := make([]UserRegistrationDTO, len(regs))
	for i := range regs {
		dtos[i] = UserRegistrationDTO{
			Registration: toRegistrationDTO(&regs[i].Registration),
			Event:        toEventDTO(&regs[i].Event),
		}
	}
	return dtos
}
