package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// StudentRepository defines persistence operations for student records.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	GetByLRN(ctx context.Context, lrn string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Meta(ctx context.Context) (models.StudentMeta, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository instantiates a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) GetByLRN(ctx context.Context, lrn string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("lrn = ?", lrn).First(&student).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Student{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("UPPER(status) = ?", strings.ToUpper(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *studentRepository) Meta(ctx context.Context) (models.StudentMeta, error) {
	meta := models.StudentMeta{
		GradeLevels:  []string{},
		Sections:     []string{},
		TrackStrands: []string{},
	}

	columns := []struct {
		name   string
		target *[]string
	}{
		{"grade_level", &meta.GradeLevels},
		{"section", &meta.Sections},
		{"track_strand", &meta.TrackStrands},
	}

	for _, column := range columns {
		var values []string
		err := r.db.WithContext(ctx).
			Model(&models.Student{}).
			Distinct(column.name).
			Where(column.name+" IS NOT NULL AND "+column.name+" <> ''").
			Pluck(column.name, &values).Error
		if err != nil {
			return models.StudentMeta{}, err
		}
		*column.target = values
	}

	return meta, nil
}
