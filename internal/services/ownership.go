package services

import (
	"gorm.io/gorm"

	"taskflow-api/internal/models"
)

// OwnershipResolver answers whether a user transitively owns a board,
// column, or task by walking the Task -> Column -> Board chain with
// explicit lookups. Non-existence and non-ownership both report false so
// callers cannot distinguish foreign ids from missing ones.
type OwnershipResolver struct {
	db *gorm.DB
}

func NewOwnershipResolver(db *gorm.DB) *OwnershipResolver {
	return &OwnershipResolver{db: db}
}

func (r *OwnershipResolver) OwnsBoard(userID, boardID uint) bool {
	var count int64
	r.db.Model(&models.Board{}).
		Where("id = ? AND user_id = ?", boardID, userID).
		Count(&count)
	return count > 0
}

func (r *OwnershipResolver) OwnsColumn(userID, columnID uint) bool {
	var column models.Column
	if err := r.db.Select("id", "board_id").First(&column, "id = ?", columnID).Error; err != nil {
		return false
	}
	return r.OwnsBoard(userID, column.BoardID)
}

func (r *OwnershipResolver) OwnsTask(userID, taskID uint) bool {
	var task models.Task
	if err := r.db.Select("id", "column_id").First(&task, "id = ?", taskID).Error; err != nil {
		return false
	}
	return r.OwnsColumn(userID, task.ColumnID)
}
