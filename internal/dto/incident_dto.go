package dto

import (
	"time"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// IncidentCreateRequest describes the payload for filing an incident report.
type IncidentCreateRequest struct {
	ReportedBy           string               `json:"reportedBy" validate:"required"`
	ReportedByLRN        string               `json:"reportedByLRN"`
	Grade                string               `json:"grade"`
	Section              string               `json:"section"`
	Date                 string               `json:"date" validate:"required"`
	Time                 string               `json:"time" validate:"required"`
	Status               string               `json:"status"`
	NarrativeDate        string               `json:"narrativeDate"`
	NarrativeTime        string               `json:"narrativeTime"`
	NarrativeDescription string               `json:"narrativeDescription"`
	ActionTaken          string               `json:"actionTaken"`
	Recommendation       string               `json:"recommendation"`
	Participants         []models.Participant `json:"participants"`
}

// IncidentUpdateRequest applies a partial update to an incident report.
type IncidentUpdateRequest struct {
	ReportedBy           *string               `json:"reportedBy"`
	ReportedByLRN        *string               `json:"reportedByLRN"`
	Grade                *string               `json:"grade"`
	Section              *string               `json:"section"`
	Date                 *string               `json:"date"`
	Time                 *string               `json:"time"`
	Status               *string               `json:"status"`
	NarrativeDate        *string               `json:"narrativeDate"`
	NarrativeTime        *string               `json:"narrativeTime"`
	NarrativeDescription *string               `json:"narrativeDescription"`
	ActionTaken          *string               `json:"actionTaken"`
	Recommendation       *string               `json:"recommendation"`
	Participants         *[]models.Participant `json:"participants"`
}

// IncidentResponse is the serialized representation returned to API clients.
type IncidentResponse struct {
	ID                   uint                 `json:"id"`
	ReportedBy           string               `json:"reportedBy"`
	ReportedByLRN        string               `json:"reportedByLRN"`
	Grade                string               `json:"grade"`
	Section              string               `json:"section"`
	Date                 string               `json:"date"`
	Time                 string               `json:"time"`
	Status               string               `json:"status"`
	NarrativeDate        string               `json:"narrativeDate"`
	NarrativeTime        string               `json:"narrativeTime"`
	NarrativeDescription string               `json:"narrativeDescription"`
	ActionTaken          string               `json:"actionTaken"`
	Recommendation       string               `json:"recommendation"`
	Participants         []models.Participant `json:"participants"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

// NewIncidentResponse converts a model into a DTO, decoding the stored
// participant list.
func NewIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:                   model.ID,
		ReportedBy:           model.ReportedBy,
		ReportedByLRN:        model.ReportedByLRN,
		Grade:                model.Grade,
		Section:              model.Section,
		Date:                 model.Date,
		Time:                 model.Time,
		Status:               model.Status,
		NarrativeDate:        model.NarrativeDate,
		NarrativeTime:        model.NarrativeTime,
		NarrativeDescription: model.NarrativeDescription,
		ActionTaken:          model.ActionTaken,
		Recommendation:       model.Recommendation,
		Participants:         model.ParticipantList(),
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

// NewIncidentResponseSlice converts a slice of models into DTOs.
func NewIncidentResponseSlice(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		responses = append(responses, NewIncidentResponse(incident))
	}

	return responses
}
