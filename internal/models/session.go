package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is a counseling session record. Participants share the incident
// participant shape; violations are related by participant LRN and Date.
type Session struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Date             string         `gorm:"size:10;not null;index" json:"date"`
	Time             string         `gorm:"size:8;not null" json:"time"`
	AppointmentType  string         `gorm:"size:40" json:"appointmentType"`
	ConsultationType string         `gorm:"size:80" json:"consultationType"`
	Status           string         `gorm:"size:40" json:"status"`
	Notes            string         `gorm:"type:text" json:"notes"`
	Participants     datatypes.JSON `gorm:"type:json" json:"-"`
	Summary          string         `gorm:"type:text" json:"summary"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ParticipantList decodes the stored participants column.
func (s Session) ParticipantList() []Participant {
	return DecodeParticipants(s.Participants)
}
