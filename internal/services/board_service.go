package services

import (
	"errors"

	"gorm.io/gorm"

	"taskflow-api/internal/models"
)

// ErrBoardNotFound covers both a missing board and one owned by another
// user, so responses never reveal which ids exist.
var ErrBoardNotFound = errors.New("board not found")

type BoardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db}
}

// List returns the user's boards newest-first, without columns.
func (s *BoardService) List(userID uint) ([]models.Board, error) {
	var boards []models.Board
	err := s.db.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&boards).Error
	return boards, err
}

// Get returns an owned board with its columns and each column's tasks
// ordered by position.
func (s *BoardService) Get(boardID, userID uint) (*models.Board, error) {
	var board models.Board
	err := s.db.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND user_id = ?", boardID, userID).
		First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

// Create inserts the board together with its three default columns as a
// single unit.
func (s *BoardService) Create(name string, userID uint) (*models.Board, error) {
	board := models.Board{
		Name:    name,
		UserID:  userID,
		Columns: make([]models.Column, 0, len(models.DefaultColumnNames)),
	}
	for _, columnName := range models.DefaultColumnNames {
		board.Columns = append(board.Columns, models.Column{Name: columnName})
	}

	if err := s.db.Create(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *BoardService) Rename(boardID uint, name string, userID uint) (*models.Board, error) {
	var board models.Board
	if err := s.db.Where("id = ? AND user_id = ?", boardID, userID).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	board.Name = name
	if err := s.db.Save(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete removes the board, its columns, and their tasks in one
// transaction. The cascade is spelled out here rather than left to
// foreign-key configuration.
func (s *BoardService) Delete(boardID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board
		if err := tx.Where("id = ? AND user_id = ?", boardID, userID).First(&board).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		var columnIDs []uint
		if err := tx.Model(&models.Column{}).Where("board_id = ?", boardID).Pluck("id", &columnIDs).Error; err != nil {
			return err
		}

		if len(columnIDs) > 0 {
			if err := tx.Where("column_id IN ?", columnIDs).Delete(&models.Task{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id = ?", boardID).Delete(&models.Column{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&board).Error
	})
}
