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

// ErrViolationNotFound indicates the requested violation does not exist.
var ErrViolationNotFound = errors.New("violation not found")

// ViolationService exposes violation domain use cases, including the
// filtered list and the distinct-student aggregation.
type ViolationService interface {
	List(ctx context.Context, req dto.ViolationListRequest) ([]dto.ViolationResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.ViolationResponse, error)
	Get(ctx context.Context, id uint) (dto.ViolationResponse, error)
	Create(ctx context.Context, payload dto.ViolationCreateRequest) (dto.ViolationResponse, error)
	Update(ctx context.Context, id uint, payload dto.ViolationUpdateRequest) (dto.ViolationResponse, error)
	Delete(ctx context.Context, id uint) error
	StudentsWithViolations(ctx context.Context, date string) (dto.ViolationStudentsResponse, error)
}

type violationService struct {
	repo      repository.ViolationRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewViolationService builds a new violation service.
func NewViolationService(repo repository.ViolationRepository, validate *validator.Validate, logger zerolog.Logger) ViolationService {
	return &violationService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "violation_service").Logger(),
	}
}

func (s *violationService) List(ctx context.Context, req dto.ViolationListRequest) ([]dto.ViolationResponse, error) {
	filter := repository.ViolationFilter{
		StudentID: req.StudentID,
		Severity:  req.Severity,
		Status:    req.Status,
		Date:      req.Date,
		Query:     req.Query,
	}

	violations, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewViolationResponseSlice(violations), nil
}

func (s *violationService) ListByStudent(ctx context.Context, studentID uint) ([]dto.ViolationResponse, error) {
	violations, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return dto.NewViolationResponseSlice(violations), nil
}

func (s *violationService) Get(ctx context.Context, id uint) (dto.ViolationResponse, error) {
	violation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ViolationResponse{}, ErrViolationNotFound
		}

		return dto.ViolationResponse{}, err
	}

	return dto.NewViolationResponse(violation), nil
}

func (s *violationService) Create(ctx context.Context, payload dto.ViolationCreateRequest) (dto.ViolationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ViolationResponse{}, err
	}

	severity := payload.Severity
	if severity == "" {
		severity = "Minor"
	}
	status := payload.Status
	if status == "" {
		status = "Pending"
	}

	violation := models.Violation{
		StudentID:     payload.StudentID,
		StudentName:   payload.StudentName,
		StudentLRN:    payload.StudentLRN,
		ViolationType: payload.ViolationType,
		Date:          payload.Date,
		Description:   payload.Description,
		Severity:      severity,
		ActionTaken:   payload.ActionTaken,
		Status:        status,
	}

	if err := s.repo.Create(ctx, &violation); err != nil {
		return dto.ViolationResponse{}, err
	}

	s.logger.Info().Uint("violation_id", violation.ID).Uint("student_id", violation.StudentID).Msg("violation recorded")

	return dto.NewViolationResponse(violation), nil
}

func (s *violationService) Update(ctx context.Context, id uint, payload dto.ViolationUpdateRequest) (dto.ViolationResponse, error) {
	violation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ViolationResponse{}, ErrViolationNotFound
		}

		return dto.ViolationResponse{}, err
	}

	if payload.StudentID != nil {
		violation.StudentID = *payload.StudentID
	}
	if payload.StudentName != nil {
		violation.StudentName = *payload.StudentName
	}
	if payload.StudentLRN != nil {
		violation.StudentLRN = *payload.StudentLRN
	}
	if payload.ViolationType != nil {
		violation.ViolationType = *payload.ViolationType
	}
	if payload.Date != nil {
		violation.Date = *payload.Date
	}
	if payload.Description != nil {
		violation.Description = *payload.Description
	}
	if payload.Severity != nil {
		violation.Severity = *payload.Severity
	}
	if payload.ActionTaken != nil {
		violation.ActionTaken = *payload.ActionTaken
	}
	if payload.Status != nil {
		violation.Status = *payload.Status
	}

	if err := s.repo.Update(ctx, &violation); err != nil {
		return dto.ViolationResponse{}, err
	}

	s.logger.Info().Uint("violation_id", violation.ID).Msg("violation updated")

	return dto.NewViolationResponse(violation), nil
}

func (s *violationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrViolationNotFound
		}
		return err
	}

	s.logger.Info().Uint("violation_id", id).Msg("violation deleted")
	return nil
}

func (s *violationService) StudentsWithViolations(ctx context.Context, date string) (dto.ViolationStudentsResponse, error) {
	ids, err := s.repo.DistinctStudentIDs(ctx, date)
	if err != nil {
		return dto.ViolationStudentsResponse{}, err
	}
	if ids == nil {
		ids = []uint{}
	}

	return dto.ViolationStudentsResponse{StudentIDs: ids}, nil
}
