package models

import "time"

// User is a guidance-office staff account. Password holds a bcrypt hash and
// is never serialized.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100;not null" json:"lastName"`
	MiddleName     string    `gorm:"size:100" json:"middleName"`
	Suffix         string    `gorm:"size:30" json:"suffix"`
	Gender         string    `gorm:"size:30;not null" json:"gender"`
	Position       string    `gorm:"size:100" json:"position"`
	WorkPosition   string    `gorm:"size:100" json:"workPosition"`
	Specialization string    `gorm:"size:100" json:"specialization"`
	ContactNo      string    `gorm:"size:30" json:"contactNo"`
	Role           string    `gorm:"size:30;not null;default:ADMIN" json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
