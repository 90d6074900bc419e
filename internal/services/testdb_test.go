package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskflow-api/internal/models"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// domain models. A single connection keeps the in-memory database alive
// for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Board{},
		&models.Column{},
		&models.Task{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", name, err)
	}
	return &user
}

func createBoard(t *testing.T, db *gorm.DB, name string, userID uint) *models.Board {
	t.Helper()

	board, err := NewBoardService(db).Create(name, userID)
	if err != nil {
		t.Fatalf("failed to create board %q: %v", name, err)
	}
	return board
}

func createTask(t *testing.T, db *gorm.DB, title string, columnID, userID uint) *models.Task {
	t.Helper()

	task, err := NewTaskService(db).Create(title, "", columnID, userID)
	if err != nil {
		t.Fatalf("failed to create task %q: %v", title, err)
	}
	return task
}

// columnTitles returns the column's task titles ordered by position.
func columnTitles(t *testing.T, db *gorm.DB, columnID uint) []string {
	t.Helper()

	var tasks []models.Task
	if err := db.Where("column_id = ?", columnID).Order("position ASC").Find(&tasks).Error; err != nil {
		t.Fatalf("failed to load tasks: %v", err)
	}
	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	return titles
}

// columnPositions returns the column's task positions ordered ascending.
func columnPositions(t *testing.T, db *gorm.DB, columnID uint) []int {
	t.Helper()

	var positions []int
	if err := db.Model(&models.Task{}).Where("column_id = ?", columnID).Order("position ASC").Pluck("position", &positions).Error; err != nil {
		t.Fatalf("failed to load positions: %v", err)
	}
	return positions
}
