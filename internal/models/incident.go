package models

import (
	"time"

	"gorm.io/datatypes"
)

// Incident is a reported disciplinary incident. Participants is an ordered
// JSON list; related violations are found by matching ReportedByLRN and Date,
// not by foreign key.
type Incident struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	ReportedBy           string         `gorm:"size:200;not null" json:"reportedBy"`
	ReportedByLRN        string         `gorm:"size:12" json:"reportedByLRN"`
	Grade                string         `gorm:"size:10" json:"grade"`
	Section              string         `gorm:"size:60" json:"section"`
	Date                 string         `gorm:"size:10;not null;index" json:"date"`
	Time                 string         `gorm:"size:8;not null" json:"time"`
	Status               string         `gorm:"size:40;default:Pending" json:"status"`
	NarrativeDate        string         `gorm:"size:10" json:"narrativeDate"`
	NarrativeTime        string         `gorm:"size:8" json:"narrativeTime"`
	NarrativeDescription string         `gorm:"type:text" json:"narrativeDescription"`
	ActionTaken          string         `gorm:"type:text" json:"actionTaken"`
	Recommendation       string         `gorm:"type:text" json:"recommendation"`
	Participants         datatypes.JSON `gorm:"type:json" json:"-"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// ParticipantList decodes the stored participants column.
func (i Incident) ParticipantList() []Participant {
	return DecodeParticipants(i.Participants)
}
