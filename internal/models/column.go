package models

import "time"

// Column is a named lane within a board holding tasks ordered by position.
type Column struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	BoardID   uint      `gorm:"not null;index" json:"board_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tasks     []Task    `gorm:"foreignKey:ColumnID" json:"tasks,omitempty"`
}
