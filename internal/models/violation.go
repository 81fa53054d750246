package models

import "time"

// Violation records a disciplinary entry for a student. StudentName and
// StudentLRN are denormalized copies taken at creation time; they are not
// kept in sync with later Student edits, and StudentID references a Student
// by convention only (no foreign key).
type Violation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentID     uint      `gorm:"not null;index" json:"studentId"`
	StudentName   string    `gorm:"size:200;not null" json:"studentName"`
	StudentLRN    string    `gorm:"size:12;index" json:"studentLRN"`
	ViolationType string    `gorm:"size:120;not null" json:"violationType"`
	Date          string    `gorm:"size:10;not null;index" json:"date"`
	Description   string    `gorm:"type:text" json:"description"`
	Severity      string    `gorm:"size:20;default:Minor" json:"severity"`
	ActionTaken   string    `gorm:"type:text" json:"actionTaken"`
	Status        string    `gorm:"size:20;default:Pending" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
