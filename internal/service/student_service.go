package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/repository"
)

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// ErrDuplicateLRN indicates another student already holds the LRN.
var ErrDuplicateLRN = errors.New("lrn already exists")

const metaCacheKey = "students:meta"

// StudentService exposes student domain use cases.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Meta(ctx context.Context) (models.StudentMeta, error)
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewStudentService builds a new student service. The cache client is
// optional; a nil client disables metadata caching.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		cache:     cache,
		cacheTTL:  ttl,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewStudentResponseSlice(students), nil
}

func (s *studentService) Get(ctx context.Context, id uint) (dto.StudentResponse, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}

		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	if _, err := s.repo.GetByLRN(ctx, payload.LRN); err == nil {
		return dto.StudentResponse{}, ErrDuplicateLRN
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.StudentResponse{}, err
	}

	status := payload.Status
	if status == "" {
		status = "ACTIVE"
	}

	student := models.Student{
		LRN:            payload.LRN,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		MiddleName:     payload.MiddleName,
		GradeLevel:     payload.GradeLevel,
		Section:        payload.Section,
		TrackStrand:    payload.TrackStrand,
		Specialization: payload.Specialization,
		SchoolYear:     payload.SchoolYear,
		Status:         status,
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.invalidateMeta(ctx)
	s.logger.Info().Uint("student_id", student.ID).Str("lrn", student.LRN).Msg("student created")

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}

		return dto.StudentResponse{}, err
	}

	if payload.LRN != nil && *payload.LRN != student.LRN {
		if _, err := s.repo.GetByLRN(ctx, *payload.LRN); err == nil {
			return dto.StudentResponse{}, ErrDuplicateLRN
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, err
		}
		student.LRN = *payload.LRN
	}
	if payload.FirstName != nil {
		student.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		student.LastName = *payload.LastName
	}
	if payload.MiddleName != nil {
		student.MiddleName = *payload.MiddleName
	}
	if payload.GradeLevel != nil {
		student.GradeLevel = *payload.GradeLevel
	}
	if payload.Section != nil {
		student.Section = *payload.Section
	}
	if payload.TrackStrand != nil {
		student.TrackStrand = *payload.TrackStrand
	}
	if payload.Specialization != nil {
		student.Specialization = *payload.Specialization
	}
	if payload.SchoolYear != nil {
		student.SchoolYear = *payload.SchoolYear
	}
	if payload.Status != nil {
		student.Status = *payload.Status
	}

	if err := s.repo.Update(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.invalidateMeta(ctx)
	s.logger.Info().Uint("student_id", student.ID).Msg("student updated")

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.invalidateMeta(ctx)
	s.logger.Info().Uint("student_id", id).Msg("student deleted")
	return nil
}

func (s *studentService) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

func (s *studentService) Meta(ctx context.Context) (models.StudentMeta, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, metaCacheKey).Result(); err == nil {
			var meta models.StudentMeta
			if unmarshalErr := json.Unmarshal([]byte(cached), &meta); unmarshalErr == nil {
				s.logger.Debug().Msg("student meta cache hit")
				return meta, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read student meta cache")
		}
	}

	meta, err := s.repo.Meta(ctx)
	if err != nil {
		return models.StudentMeta{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(meta); err == nil {
			if err := s.cache.Set(ctx, metaCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store student meta cache")
			}
		}
	}

	return meta, nil
}

func (s *studentService) invalidateMeta(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, metaCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate student meta cache")
	}
}
