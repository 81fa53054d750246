package dto

import (
	"time"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// StudentCreateRequest describes the payload for enrolling a student record.
type StudentCreateRequest struct {
	LRN            string `json:"lrn" validate:"required,len=12,numeric"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	MiddleName     string `json:"middleName"`
	GradeLevel     string `json:"gradeLevel"`
	Section        string `json:"section"`
	TrackStrand    string `json:"trackStrand"`
	Specialization string `json:"specialization"`
	SchoolYear     string `json:"schoolYear"`
	Status         string `json:"status"`
}

// StudentUpdateRequest applies a partial update; only fields present in the
// request body change.
type StudentUpdateRequest struct {
	LRN            *string `json:"lrn" validate:"omitempty,len=12,numeric"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	MiddleName     *string `json:"middleName"`
	GradeLevel     *string `json:"gradeLevel"`
	Section        *string `json:"section"`
	TrackStrand    *string `json:"trackStrand"`
	Specialization *string `json:"specialization"`
	SchoolYear     *string `json:"schoolYear"`
	Status         *string `json:"status"`
}

// StudentResponse is the serialized representation returned to API clients.
type StudentResponse struct {
	ID             uint      `json:"id"`
	LRN            string    `json:"lrn"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	MiddleName     string    `json:"middleName"`
	GradeLevel     string    `json:"gradeLevel"`
	Section        string    `json:"section"`
	TrackStrand    string    `json:"trackStrand"`
	Specialization string    `json:"specialization"`
	SchoolYear     string    `json:"schoolYear"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:             model.ID,
		LRN:            model.LRN,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		MiddleName:     model.MiddleName,
		GradeLevel:     model.GradeLevel,
		Section:        model.Section,
		TrackStrand:    model.TrackStrand,
		Specialization: model.Specialization,
		SchoolYear:     model.SchoolYear,
		Status:         model.Status,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}

	return responses
}
