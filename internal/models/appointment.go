package models

import "time"

// Appointment is a scheduled consultation with a student or guardian.
// Date and time are kept as plain strings (yyyy-MM-dd / HH:mm:ss) the way
// the intake forms submit them; they are not validated or normalized.
type Appointment struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:100;not null" json:"title"`
	ParticipantName  string    `gorm:"size:100;not null" json:"participantName"`
	ParticipantLRN   string    `gorm:"size:12" json:"participantLRN"`
	ParticipantType  string    `gorm:"size:20" json:"participantType"`
	Date             string    `gorm:"size:10;not null" json:"date"`
	Time             string    `gorm:"size:8;not null" json:"time"`
	ConsultationType string    `gorm:"size:60;not null" json:"consultationType"`
	Notes            string    `gorm:"type:text" json:"notes"`
	Status           string    `gorm:"size:20;default:SCHEDULED" json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
