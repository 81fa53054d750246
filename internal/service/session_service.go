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

// ErrSessionNotFound indicates the requested session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionService exposes counseling session use cases.
type SessionService interface {
	List(ctx context.Context) ([]dto.SessionResponse, error)
	Get(ctx context.Context, id uint) (dto.SessionResponse, error)
	Create(ctx context.Context, payload dto.SessionCreateRequest) (dto.SessionResponse, error)
	Update(ctx context.Context, id uint, payload dto.SessionUpdateRequest) (dto.SessionResponse, error)
}

type sessionService struct {
	repo       repository.SessionRepository
	propagator *StatusPropagator
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewSessionService builds a new session service.
func NewSessionService(repo repository.SessionRepository, propagator *StatusPropagator, validate *validator.Validate, logger zerolog.Logger) SessionService {
	return &sessionService{
		repo:       repo,
		propagator: propagator,
		validator:  validate,
		logger:     logger.With().Str("component", "session_service").Logger(),
	}
}

func (s *sessionService) List(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSessionResponseSlice(sessions), nil
}

func (s *sessionService) Get(ctx context.Context, id uint) (dto.SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SessionResponse{}, ErrSessionNotFound
		}

		return dto.SessionResponse{}, err
	}

	return dto.NewSessionResponse(session), nil
}

func (s *sessionService) Create(ctx context.Context, payload dto.SessionCreateRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionResponse{}, err
	}

	session := models.Session{
		Date:             payload.Date,
		Time:             payload.Time,
		AppointmentType:  payload.AppointmentType,
		ConsultationType: payload.ConsultationType,
		Status:           payload.Status,
		Notes:            payload.Notes,
		Participants:     models.EncodeParticipants(payload.Participants),
		Summary:          payload.Summary,
	}

	if err := s.repo.Create(ctx, &session); err != nil {
		return dto.SessionResponse{}, err
	}

	s.logger.Info().Uint("session_id", session.ID).Msg("session logged")

	return dto.NewSessionResponse(session), nil
}

func (s *sessionService) Update(ctx context.Context, id uint, payload dto.SessionUpdateRequest) (dto.SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SessionResponse{}, ErrSessionNotFound
		}

		return dto.SessionResponse{}, err
	}

	if payload.Date != nil {
		session.Date = *payload.Date
	}
	if payload.Time != nil {
		session.Time = *payload.Time
	}
	if payload.AppointmentType != nil {
		session.AppointmentType = *payload.AppointmentType
	}
	if payload.ConsultationType != nil {
		session.ConsultationType = *payload.ConsultationType
	}
	if payload.Status != nil {
		session.Status = *payload.Status
	}
	if payload.Notes != nil {
		session.Notes = *payload.Notes
	}
	if payload.Participants != nil {
		session.Participants = models.EncodeParticipants(*payload.Participants)
	}
	if payload.Summary != nil {
		session.Summary = *payload.Summary
	}

	if err := s.repo.Update(ctx, &session); err != nil {
		return dto.SessionResponse{}, err
	}

	s.logger.Info().Uint("session_id", session.ID).Msg("session updated")

	// Same contract as incidents: the session update is already committed,
	// propagation failures stay internal.
	if s.propagator != nil {
		s.propagator.FromSession(ctx, session)
	}

	return dto.NewSessionResponse(session), nil
}
