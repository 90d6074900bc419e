package services

import (
	"errors"

	"gorm.io/gorm"

	"taskflow-api/internal/models"
)

var (
	// ErrColumnNotFound conflates missing and unowned columns.
	ErrColumnNotFound = errors.New("column not found")
	// ErrBoardNotOwned rejects attaching a column to a board the user
	// does not own. Unlike ErrBoardNotFound it maps to a 403, since the
	// caller explicitly named the parent board.
	ErrBoardNotOwned = errors.New("board not found or not owned by you")
)

type ColumnService struct {
	db   *gorm.DB
	owns *OwnershipResolver
}

func NewColumnService(db *gorm.DB) *ColumnService {
	return &ColumnService{db: db, owns: NewOwnershipResolver(db)}
}

func (s *ColumnService) Create(name string, boardID, userID uint) (*models.Column, error) {
	if !s.owns.OwnsBoard(userID, boardID) {
		return nil, ErrBoardNotOwned
	}

	column := models.Column{Name: name, BoardID: boardID}
	if err := s.db.Create(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

func (s *ColumnService) Rename(columnID uint, name string, userID uint) (*models.Column, error) {
	column, err := s.getOwned(columnID, userID)
	if err != nil {
		return nil, err
	}

	column.Name = name
	if err := s.db.Save(column).Error; err != nil {
		return nil, err
	}
	return column, nil
}

// Delete removes the column and all of its tasks in one transaction.
func (s *ColumnService) Delete(columnID, userID uint) error {
	column, err := s.getOwned(columnID, userID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ?", columnID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(column).Error
	})
}

func (s *ColumnService) getOwned(columnID, userID uint) (*models.Column, error) {
	var column models.Column
	if err := s.db.First(&column, "id = ?", columnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	if !s.owns.OwnsBoard(userID, column.BoardID) {
		return nil, ErrColumnNotFound
	}
	return &column, nil
}
