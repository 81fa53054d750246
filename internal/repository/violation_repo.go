package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// ViolationFilter narrows violation list queries. All predicates compose
// with AND; severity and status compare case-insensitively, Query is a
// case-insensitive substring match on the student name.
type ViolationFilter struct {
	StudentID *uint
	Severity  string
	Status    string
	Date      string
	Query     string
}

// ViolationRepository defines persistence operations for violations,
// including the batch status update used by propagation.
type ViolationRepository interface {
	List(ctx context.Context, filter ViolationFilter) ([]models.Violation, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Violation, error)
	GetByID(ctx context.Context, id uint) (models.Violation, error)
	Create(ctx context.Context, violation *models.Violation) error
	Update(ctx context.Context, violation *models.Violation) error
	Delete(ctx context.Context, id uint) error
	DistinctStudentIDs(ctx context.Context, date string) ([]uint, error)
	UpdateStatusByLRNDate(ctx context.Context, lrns []string, date, status string) (int64, error)
}

type violationRepository struct {
	db *gorm.DB
}

// NewViolationRepository instantiates a GORM-backed repository.
func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &violationRepository{db: db}
}

func (r *violationRepository) List(ctx context.Context, filter ViolationFilter) ([]models.Violation, error) {
	query := r.db.WithContext(ctx).Model(&models.Violation{})

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.Severity != "" {
		query = query.Where("UPPER(severity) = ?", strings.ToUpper(filter.Severity))
	}
	if filter.Status != "" {
		query = query.Where("UPPER(status) = ?", strings.ToUpper(filter.Status))
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filter.Query)) + "%"
		query = query.Where("LOWER(student_name) LIKE ?", pattern)
	}

	var violations []models.Violation
	if err := query.Order("date DESC").Order("id DESC").Find(&violations).Error; err != nil {
		return nil, err
	}

	return violations, nil
}

func (r *violationRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Violation, error) {
	var violations []models.Violation
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").Order("id DESC").
		Find(&violations).Error
	if err != nil {
		return nil, err
	}

	return violations, nil
}

func (r *violationRepository) GetByID(ctx context.Context, id uint) (models.Violation, error) {
	var violation models.Violation
	if err := r.db.WithContext(ctx).First(&violation, id).Error; err != nil {
		return models.Violation{}, err
	}

	return violation, nil
}

func (r *violationRepository) Create(ctx context.Context, violation *models.Violation) error {
	return r.db.WithContext(ctx).Create(violation).Error
}

func (r *violationRepository) Update(ctx context.Context, violation *models.Violation) error {
	return r.db.WithContext(ctx).Save(violation).Error
}

func (r *violationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Violation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *violationRepository) DistinctStudentIDs(ctx context.Context, date string) ([]uint, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Violation{}).
		Distinct("student_id").
		Where("student_id IS NOT NULL AND student_id <> 0")

	if date != "" {
		query = query.Where("date = ?", date)
	}

	var ids []uint
	if err := query.Pluck("student_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

// UpdateStatusByLRNDate sets the status of every violation matching one of
// the LRNs on the given date. The batch commits or rolls back as a whole.
func (r *violationRepository) UpdateStatusByLRNDate(ctx context.Context, lrns []string, date, status string) (int64, error) {
	if len(lrns) == 0 {
		return 0, nil
	}

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Violation{}).
			Where("student_lrn IN ?", lrns).
			Where("date = ?", date).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
