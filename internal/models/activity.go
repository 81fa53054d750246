package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog captures auditable side effects, primarily the outcome of
// violation status propagation triggered by incident and session updates.
type ActivityLog struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Action     string            `gorm:"size:64;not null" json:"action"`
	EntityType string            `gorm:"size:64;not null" json:"entity_type"`
	EntityID   *uint             `json:"entity_id"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `json:"created_at"`
}
