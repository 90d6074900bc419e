package models

import "time"

// Board is the top-level container. Every board belongs to exactly one
// user; new boards are seeded with the three default columns.
type Board struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Columns   []Column  `gorm:"foreignKey:BoardID" json:"columns,omitempty"`
}

// DefaultColumnNames are created with every new board, in this order.
var DefaultColumnNames = []string{"To Do", "In Progress", "Done"}
