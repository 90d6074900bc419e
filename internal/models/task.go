package models

import "time"

// Task is a unit of work. Position is the zero-based rank within its
// column; the task service keeps positions contiguous per column.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	ColumnID    uint      `gorm:"not null;index" json:"column_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
