package dto

import (
	"time"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// SessionCreateRequest describes the payload for logging a counseling session.
type SessionCreateRequest struct {
	Date             string               `json:"date" validate:"required"`
	Time             string               `json:"time" validate:"required"`
	AppointmentType  string               `json:"appointmentType"`
	ConsultationType string               `json:"consultationType"`
	Status           string               `json:"status"`
	Notes            string               `json:"notes"`
	Participants     []models.Participant `json:"participants"`
	Summary          string               `json:"summary"`
}

// SessionUpdateRequest applies a partial update to a counseling session.
type SessionUpdateRequest struct {
	Date             *string               `json:"date"`
	Time             *string               `json:"time"`
	AppointmentType  *string               `json:"appointmentType"`
	ConsultationType *string               `json:"consultationType"`
	Status           *string               `json:"status"`
	Notes            *string               `json:"notes"`
	Participants     *[]models.Participant `json:"participants"`
	Summary          *string               `json:"summary"`
}

// SessionResponse is the serialized representation returned to API clients.
type SessionResponse struct {
	ID               uint                 `json:"id"`
	Date             string               `json:"date"`
	Time             string               `json:"time"`
	AppointmentType  string               `json:"appointmentType"`
	ConsultationType string               `json:"consultationType"`
	Status           string               `json:"status"`
	Notes            string               `json:"notes"`
	Participants     []models.Participant `json:"participants"`
	Summary          string               `json:"summary"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// NewSessionResponse converts a model into a DTO, decoding the stored
// participant list.
func NewSessionResponse(model models.Session) SessionResponse {
	return SessionResponse{
		ID:               model.ID,
		Date:             model.Date,
		Time:             model.Time,
		AppointmentType:  model.AppointmentType,
		ConsultationType: model.ConsultationType,
		Status:           model.Status,
		Notes:            model.Notes,
		Participants:     model.ParticipantList(),
		Summary:          model.Summary,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// NewSessionResponseSlice converts a slice of models into DTOs.
func NewSessionResponseSlice(sessions []models.Session) []SessionResponse {
	responses := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, NewSessionResponse(session))
	}

	return responses
}
