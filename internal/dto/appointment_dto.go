package dto

import (
	"time"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// AppointmentCreateRequest describes the payload for scheduling an appointment.
type AppointmentCreateRequest struct {
	Title            string `json:"title" validate:"required"`
	ParticipantName  string `json:"participantName" validate:"required"`
	ParticipantLRN   string `json:"participantLRN"`
	ParticipantType  string `json:"participantType"`
	Date             string `json:"date" validate:"required"`
	Time             string `json:"time" validate:"required"`
	ConsultationType string `json:"consultationType" validate:"required"`
	Notes            string `json:"notes"`
	Status           string `json:"status"`
}

// AppointmentUpdateRequest applies a partial update to an appointment.
type AppointmentUpdateRequest struct {
	Title            *string `json:"title"`
	ParticipantName  *string `json:"participantName"`
	ParticipantLRN   *string `json:"participantLRN"`
	ParticipantType  *string `json:"participantType"`
	Date             *string `json:"date"`
	Time             *string `json:"time"`
	ConsultationType *string `json:"consultationType"`
	Notes            *string `json:"notes"`
	Status           *string `json:"status"`
}

// AppointmentResponse is the serialized representation returned to API clients.
type AppointmentResponse struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	ParticipantName  string    `json:"participantName"`
	ParticipantLRN   string    `json:"participantLRN"`
	ParticipantType  string    `json:"participantType"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	ConsultationType string    `json:"consultationType"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewAppointmentResponse converts a model into a DTO.
func NewAppointmentResponse(model models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:               model.ID,
		Title:            model.Title,
		ParticipantName:  model.ParticipantName,
		ParticipantLRN:   model.ParticipantLRN,
		ParticipantType:  model.ParticipantType,
		Date:             model.Date,
		Time:             model.Time,
		ConsultationType: model.ConsultationType,
		Notes:            model.Notes,
		Status:           model.Status,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// NewAppointmentResponseSlice converts a slice of models into DTOs.
func NewAppointmentResponseSlice(appointments []models.Appointment) []AppointmentResponse {
	responses := make([]AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		responses = append(responses, NewAppointmentResponse(appointment))
	}

	return responses
}
