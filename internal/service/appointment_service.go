package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/repository"
)

// ErrAppointmentNotFound indicates the requested appointment does not exist.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentService exposes appointment domain use cases.
type AppointmentService interface {
	List(ctx context.Context) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, id uint) (dto.AppointmentResponse, error)
	Create(ctx context.Context, payload dto.AppointmentCreateRequest) (dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, payload dto.AppointmentUpdateRequest) (dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentService struct {
	repo      repository.AppointmentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAppointmentService builds a new appointment service.
func NewAppointmentService(repo repository.AppointmentRepository, validate *validator.Validate, logger zerolog.Logger) AppointmentService {
	return &appointmentService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "appointment_service").Logger(),
	}
}

func (s *appointmentService) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentResponseSlice(appointments), nil
}

func (s *appointmentService) Get(ctx context.Context, id uint) (dto.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AppointmentResponse{}, ErrAppointmentNotFound
		}

		return dto.AppointmentResponse{}, err
	}

	return dto.NewAppointmentResponse(appointment), nil
}

func (s *appointmentService) Create(ctx context.Context, payload dto.AppointmentCreateRequest) (dto.AppointmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AppointmentResponse{}, err
	}

	status := payload.Status
	if status == "" {
		status = "SCHEDULED"
	}

	appointment := models.Appointment{
		Title:            payload.Title,
		ParticipantName:  payload.ParticipantName,
		ParticipantLRN:   payload.ParticipantLRN,
		ParticipantType:  payload.ParticipantType,
		Date:             payload.Date,
		Time:             payload.Time,
		ConsultationType: payload.ConsultationType,
		Notes:            payload.Notes,
		Status:           status,
	}

	if err := s.repo.Create(ctx, &appointment); err != nil {
		return dto.AppointmentResponse{}, err
	}

	s.logger.Info().Uint("appointment_id", appointment.ID).Msg("appointment created")

	return dto.NewAppointmentResponse(appointment), nil
}

func (s *appointmentService) Update(ctx context.Context, id uint, payload dto.AppointmentUpdateRequest) (dto.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AppointmentResponse{}, ErrAppointmentNotFound
		}

		return dto.AppointmentResponse{}, err
	}

	if payload.Title != nil {
		appointment.Title = *payload.Title
	}
	if payload.ParticipantName != nil {
		appointment.ParticipantName = *payload.ParticipantName
	}
	if payload.ParticipantLRN != nil {
		appointment.ParticipantLRN = *payload.ParticipantLRN
	}
	if payload.ParticipantType != nil {
		appointment.ParticipantType = *payload.ParticipantType
	}
	if payload.Date != nil {
		appointment.Date = *payload.Date
	}
	if payload.Time != nil {
		appointment.Time = *payload.Time
	}
	if payload.ConsultationType != nil {
		appointment.ConsultationType = *payload.ConsultationType
	}
	if payload.Notes != nil {
		appointment.Notes = *payload.Notes
	}
	if payload.Status != nil {
		appointment.Status = *payload.Status
	}

	if err := s.repo.Update(ctx, &appointment); err != nil {
		return dto.AppointmentResponse{}, err
	}

	s.logger.Info().Uint("appointment_id", appointment.ID).Msg("appointment updated")

	return dto.NewAppointmentResponse(appointment), nil
}

func (s *appointmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	s.logger.Info().Uint("appointment_id", id).Msg("appointment deleted")
	return nil
}
