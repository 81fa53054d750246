package dto

import (
	"time"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// UserCreateRequest describes the payload for registering a staff account.
type UserCreateRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	MiddleName     string `json:"middleName"`
	Suffix         string `json:"suffix"`
	Gender         string `json:"gender" validate:"required"`
	Position       string `json:"position"`
	WorkPosition   string `json:"workPosition"`
	Specialization string `json:"specialization"`
	ContactNo      string `json:"contactNo"`
	Role           string `json:"role"`
}

// UserUpdateRequest applies a partial update. A password value is re-hashed
// before storage; it is never stored or echoed in plaintext.
type UserUpdateRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=8"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	MiddleName     *string `json:"middleName"`
	Suffix         *string `json:"suffix"`
	Gender         *string `json:"gender"`
	Position       *string `json:"position"`
	WorkPosition   *string `json:"workPosition"`
	Specialization *string `json:"specialization"`
	ContactNo      *string `json:"contactNo"`
	Role           *string `json:"role"`
}

// AuthenticateRequest carries login credentials.
type AuthenticateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the serialized representation returned to API clients.
// The password hash is deliberately absent.
type UserResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	MiddleName     string    `json:"middleName"`
	Suffix         string    `json:"suffix"`
	Gender         string    `json:"gender"`
	Position       string    `json:"position"`
	WorkPosition   string    `json:"workPosition"`
	Specialization string    `json:"specialization"`
	ContactNo      string    `json:"contactNo"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AuthenticateResponse bundles the authenticated user with a signed token.
type AuthenticateResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse converts a model into a DTO.
func NewUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:             model.ID,
		Email:          model.Email,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		MiddleName:     model.MiddleName,
		Suffix:         model.Suffix,
		Gender:         model.Gender,
		Position:       model.Position,
		WorkPosition:   model.WorkPosition,
		Specialization: model.Specialization,
		ContactNo:      model.ContactNo,
		Role:           model.Role,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// NewUserResponseSlice converts a slice of models into DTOs.
func NewUserResponseSlice(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}

	return responses
}
