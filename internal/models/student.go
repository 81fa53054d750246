package models

import "time"

// Student represents a learner tracked by the guidance office.
type Student struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	LRN            string    `gorm:"size:12;uniqueIndex;not null" json:"lrn"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100;not null" json:"lastName"`
	MiddleName     string    `gorm:"size:100" json:"middleName"`
	GradeLevel     string    `gorm:"size:10" json:"gradeLevel"`
	Section        string    `gorm:"size:30" json:"section"`
	TrackStrand    string    `gorm:"size:60" json:"trackStrand"`
	Specialization string    `gorm:"size:60" json:"specialization"`
	SchoolYear     string    `gorm:"size:20" json:"schoolYear"`
	Status         string    `gorm:"size:20;default:ACTIVE" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// StudentMeta holds the distinct grouping values observed across students.
type StudentMeta struct {
	GradeLevels  []string `json:"gradeLevels"`
	Sections     []string `json:"sections"`
	TrackStrands []string `json:"trackStrands"`
}
