package services

import (
	"errors"

	"gorm.io/gorm"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/models"
)

var (
	// ErrTaskNotFound conflates missing and unowned tasks.
	ErrTaskNotFound = errors.New("task not found")
	// ErrColumnNotOwned rejects attaching a task to a column the user
	// does not own; maps to 403 on the create path.
	ErrColumnNotOwned = errors.New("column not found or not owned by you")
)

type TaskService struct {
	db   *gorm.DB
	owns *OwnershipResolver
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db, owns: NewOwnershipResolver(db)}
}

// Create appends the task at the end of the column: position is one past
// the current maximum, or 0 for an empty column.
func (s *TaskService) Create(title, description string, columnID, userID uint) (*models.Task, error) {
	if !s.owns.OwnsColumn(userID, columnID) {
		return nil, ErrColumnNotOwned
	}

	task := models.Task{
		Title:       title,
		Description: description,
		ColumnID:    columnID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		task.Position = nextPosition(tx, columnID)
		return tx.Create(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update overwrites the two mutable text fields; column and position are
// untouched.
func (s *TaskService) Update(taskID uint, title, description string, userID uint) (*models.Task, error) {
	task, err := s.getOwned(taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and renumbers the rest of the column back to a
// contiguous 0..n-1 sequence in the same transaction.
func (s *TaskService) Delete(taskID, userID uint) error {
	task, err := s.getOwned(taskID, userID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(task).Error; err != nil {
			return err
		}
		return compactPositions(tx, task.ColumnID)
	})
}

// Reorder applies a bulk position assignment to tasks in one column.
// Every referenced task must currently live in that column; otherwise the
// whole call fails and nothing moves.
func (s *TaskService) Reorder(columnID uint, pairs []dto.TaskReorder, userID uint) error {
	if !s.owns.OwnsColumn(userID, columnID) {
		return ErrColumnNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var tasks []models.Task
		if err := tx.Where("column_id = ?", columnID).Find(&tasks).Error; err != nil {
			return err
		}

		byID := make(map[uint]*models.Task, len(tasks))
		for i := range tasks {
			byID[tasks[i].ID] = &tasks[i]
		}

		for _, pair := range pairs {
			if _, ok := byID[pair.TaskID]; !ok {
				return ErrTaskNotFound
			}
		}

		for _, pair := range pairs {
			task := byID[pair.TaskID]
			if task.Position == pair.NewPosition {
				continue
			}
			if err := tx.Model(task).Update("position", pair.NewPosition).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Move relocates a task to another column. Both the task's current chain
// and the destination column must be owned by the user; the task is
// appended at the end of the destination and the source column is
// renumbered to stay contiguous.
func (s *TaskService) Move(taskID, newColumnID, userID uint) error {
	task, err := s.getOwned(taskID, userID)
	if err != nil {
		return err
	}
	if !s.owns.OwnsColumn(userID, newColumnID) {
		return ErrColumnNotFound
	}
	if task.ColumnID == newColumnID {
		return nil
	}

	sourceColumnID := task.ColumnID
	return s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"column_id": newColumnID,
			"position":  nextPosition(tx, newColumnID),
		}
		if err := tx.Model(task).Updates(updates).Error; err != nil {
			return err
		}
		return compactPositions(tx, sourceColumnID)
	})
}

func (s *TaskService) getOwned(taskID, userID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if !s.owns.OwnsColumn(userID, task.ColumnID) {
		return nil, ErrTaskNotFound
	}
	return &task, nil
}

// nextPosition returns one past the highest position in the column, or 0
// when the column has no tasks.
func nextPosition(tx *gorm.DB, columnID uint) int {
	var maxPosition int
	tx.Model(&models.Task{}).
		Where("column_id = ?", columnID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPosition)
	return maxPosition + 1
}

// compactPositions renumbers a column's tasks to 0..n-1, preserving the
// existing relative order.
func compactPositions(tx *gorm.DB, columnID uint) error {
	var tasks []models.Task
	if err := tx.Where("column_id = ?", columnID).Order("position ASC").Find(&tasks).Error; err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].Position == i {
			continue
		}
		if err := tx.Model(&tasks[i]).Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}
