package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

// IncidentRepository defines persistence operations for incident reports.
// The HTTP surface has no incident delete.
type IncidentRepository interface {
	List(ctx context.Context) ([]models.Incident, error)
	GetByID(ctx context.Context, id uint) (models.Incident, error)
	Create(ctx context.Context, incident *models.Incident) error
	Update(ctx context.Context, incident *models.Incident) error
}

type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository instantiates a GORM-backed repository.
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) List(ctx context.Context) ([]models.Incident, error) {
	var incidents []models.Incident
	err := r.db.WithContext(ctx).
		Order("date DESC").Order("id DESC").
		Find(&incidents).Error
	if err != nil {
		return nil, err
	}

	return incidents, nil
}

func (r *incidentRepository) GetByID(ctx context.Context, id uint) (models.Incident, error) {
	var incident models.Incident
	if err := r.db.WithContext(ctx).First(&incident, id).Error; err != nil {
		return models.Incident{}, err
	}

	return incident, nil
}

func (r *incidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

func (r *incidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	return r.db.WithContext(ctx).Save(incident).Error
}
