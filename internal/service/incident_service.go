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

// ErrIncidentNotFound indicates the requested incident does not exist.
var ErrIncidentNotFound = errors.New("incident not found")

// IncidentService exposes incident report use cases.
type IncidentService interface {
	List(ctx context.Context) ([]dto.IncidentResponse, error)
	Get(ctx context.Context, id uint) (dto.IncidentResponse, error)
	Create(ctx context.Context, payload dto.IncidentCreateRequest) (dto.IncidentResponse, error)
	Update(ctx context.Context, id uint, payload dto.IncidentUpdateRequest) (dto.IncidentResponse, error)
}

type incidentService struct {
	repo       repository.IncidentRepository
	propagator *StatusPropagator
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewIncidentService builds a new incident service.
func NewIncidentService(repo repository.IncidentRepository, propagator *StatusPropagator, validate *validator.Validate, logger zerolog.Logger) IncidentService {
	return &incidentService{
		repo:       repo,
		propagator: propagator,
		validator:  validate,
		logger:     logger.With().Str("component", "incident_service").Logger(),
	}
}

func (s *incidentService) List(ctx context.Context) ([]dto.IncidentResponse, error) {
	incidents, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewIncidentResponseSlice(incidents), nil
}

func (s *incidentService) Get(ctx context.Context, id uint) (dto.IncidentResponse, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.IncidentResponse{}, ErrIncidentNotFound
		}

		return dto.IncidentResponse{}, err
	}

	return dto.NewIncidentResponse(incident), nil
}

func (s *incidentService) Create(ctx context.Context, payload dto.IncidentCreateRequest) (dto.IncidentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.IncidentResponse{}, err
	}

	status := payload.Status
	if status == "" {
		status = "Pending"
	}

	incident := models.Incident{
		ReportedBy:           payload.ReportedBy,
		ReportedByLRN:        payload.ReportedByLRN,
		Grade:                payload.Grade,
		Section:              payload.Section,
		Date:                 payload.Date,
		Time:                 payload.Time,
		Status:               status,
		NarrativeDate:        payload.NarrativeDate,
		NarrativeTime:        payload.NarrativeTime,
		NarrativeDescription: payload.NarrativeDescription,
		ActionTaken:          payload.ActionTaken,
		Recommendation:       payload.Recommendation,
		Participants:         models.EncodeParticipants(payload.Participants),
	}

	if err := s.repo.Create(ctx, &incident); err != nil {
		return dto.IncidentResponse{}, err
	}

	s.logger.Info().Uint("incident_id", incident.ID).Msg("incident filed")

	return dto.NewIncidentResponse(incident), nil
}

func (s *incidentService) Update(ctx context.Context, id uint, payload dto.IncidentUpdateRequest) (dto.IncidentResponse, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.IncidentResponse{}, ErrIncidentNotFound
		}

		return dto.IncidentResponse{}, err
	}

	if payload.ReportedBy != nil {
		incident.ReportedBy = *payload.ReportedBy
	}
	if payload.ReportedByLRN != nil {
		incident.ReportedByLRN = *payload.ReportedByLRN
	}
	if payload.Grade != nil {
		incident.Grade = *payload.Grade
	}
	if payload.Section != nil {
		incident.Section = *payload.Section
	}
	if payload.Date != nil {
		incident.Date = *payload.Date
	}
	if payload.Time != nil {
		incident.Time = *payload.Time
	}
	if payload.Status != nil {
		incident.Status = *payload.Status
	}
	if payload.NarrativeDate != nil {
		incident.NarrativeDate = *payload.NarrativeDate
	}
	if payload.NarrativeTime != nil {
		incident.NarrativeTime = *payload.NarrativeTime
	}
	if payload.NarrativeDescription != nil {
		incident.NarrativeDescription = *payload.NarrativeDescription
	}
	if payload.ActionTaken != nil {
		incident.ActionTaken = *payload.ActionTaken
	}
	if payload.Recommendation != nil {
		incident.Recommendation = *payload.Recommendation
	}
	if payload.Participants != nil {
		incident.Participants = models.EncodeParticipants(*payload.Participants)
	}

	if err := s.repo.Update(ctx, &incident); err != nil {
		return dto.IncidentResponse{}, err
	}

	s.logger.Info().Uint("incident_id", incident.ID).Msg("incident updated")

	// The incident's own update is committed; propagation is a secondary,
	// independently-failable pass that must not affect this response.
	if s.propagator != nil {
		s.propagator.FromIncident(ctx, incident)
	}

	return dto.NewIncidentResponse(incident), nil
}
