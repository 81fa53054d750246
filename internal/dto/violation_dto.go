package dto

import (
	"time"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// ViolationCreateRequest describes the payload for recording a violation.
// StudentName and StudentLRN are denormalized copies of the student record
// as it existed when the violation was filed.
type ViolationCreateRequest struct {
	StudentID     uint   `json:"studentId" validate:"required"`
	StudentName   string `json:"studentName" validate:"required"`
	StudentLRN    string `json:"studentLRN"`
	ViolationType string `json:"violationType" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Description   string `json:"description"`
	Severity      string `json:"severity"`
	ActionTaken   string `json:"actionTaken"`
	Status        string `json:"status"`
}

// ViolationUpdateRequest applies a partial update to a violation.
type ViolationUpdateRequest struct {
	StudentID     *uint   `json:"studentId"`
	StudentName   *string `json:"studentName"`
	StudentLRN    *string `json:"studentLRN"`
	ViolationType *string `json:"violationType"`
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	Severity      *string `json:"severity"`
	ActionTaken   *string `json:"actionTaken"`
	Status        *string `json:"status"`
}

// ViolationListRequest carries the optional list filters. Severity and
// status match case-insensitively, q is a substring match on the student
// name, date is an exact string match.
type ViolationListRequest struct {
	StudentID *uint
	Severity  string
	Status    string
	Date      string
	Query     string
}

// ViolationResponse is the serialized representation returned to API clients.
type ViolationResponse struct {
	ID            uint      `json:"id"`
	StudentID     uint      `json:"studentId"`
	StudentName   string    `json:"studentName"`
	StudentLRN    string    `json:"studentLRN"`
	ViolationType string    `json:"violationType"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	Severity      string    `json:"severity"`
	ActionTaken   string    `json:"actionTaken"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ViolationStudentsResponse lists the distinct student ids that have
// violations on record.
type ViolationStudentsResponse struct {
	StudentIDs []uint `json:"studentIds"`
}

// NewViolationResponse converts a model into a DTO.
func NewViolationResponse(model models.Violation) ViolationResponse {
	return ViolationResponse{
		ID:            model.ID,
		StudentID:     model.StudentID,
		StudentName:   model.StudentName,
		StudentLRN:    model.StudentLRN,
		ViolationType: model.ViolationType,
		Date:          model.Date,
		Description:   model.Description,
		Severity:      model.Severity,
		ActionTaken:   model.ActionTaken,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// NewViolationResponseSlice converts a slice of models into DTOs.
func NewViolationResponseSlice(violations []models.Violation) []ViolationResponse {
	responses := make([]ViolationResponse, 0, len(violations))
	for _, violation := range violations {
		responses = append(responses, NewViolationResponse(violation))
	}

	return responses
}
