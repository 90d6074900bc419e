package models

import "time"

// User owns zero or more boards. Emails are stored lowercased so the
// unique index is effectively case-insensitive.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Boards       []Board   `gorm:"foreignKey:UserID" json:"-"`
}
