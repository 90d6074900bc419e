package services

import (
	"errors"
	"reflect"
	"testing"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/models"
)

func TestTaskCreate_AppendsAtEnd(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]

	first := createTask(t, db, "Fix bug", todo.ID, user.ID)
	if first.Position != 0 {
		t.Errorf("first task in empty column: position = %d, want 0", first.Position)
	}

	second := createTask(t, db, "Write tests", todo.ID, user.ID)
	if second.Position != 1 {
		t.Errorf("second task: position = %d, want 1", second.Position)
	}

	// Positions are per column: a sibling column starts back at 0.
	other := createTask(t, db, "Unrelated", board.Columns[1].ID, user.ID)
	if other.Position != 0 {
		t.Errorf("task in sibling column: position = %d, want 0", other.Position)
	}
}

func TestTaskCreate_ForeignColumnIsDenied(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	intruder := createUser(t, db, "intruder")
	board := createBoard(t, db, "Private", owner.ID)

	_, err := NewTaskService(db).Create("Sneaky", "", board.Columns[0].ID, intruder.ID)
	if !errors.Is(err, ErrColumnNotOwned) {
		t.Fatalf("expected ErrColumnNotOwned, got %v", err)
	}
}

func TestTaskUpdate_TouchesOnlyTextFields(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]

	createTask(t, db, "Keep my slot", todo.ID, user.ID)
	task := createTask(t, db, "Old title", todo.ID, user.ID)

	updated, err := NewTaskService(db).Update(task.ID, "New title", "Now with details", user.ID)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "New title" || updated.Description != "Now with details" {
		t.Errorf("text fields not updated: %+v", updated)
	}
	if updated.Position != 1 || updated.ColumnID != todo.ID {
		t.Errorf("position/column must not change on update: position=%d column=%d", updated.Position, updated.ColumnID)
	}
}

func TestTaskUpdate_OtherUserSeesNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	intruder := createUser(t, db, "intruder")
	board := createBoard(t, db, "Private", owner.ID)
	task := createTask(t, db, "Untouchable", board.Columns[0].ID, owner.ID)

	_, err := NewTaskService(db).Update(task.ID, "Hijacked", "", intruder.ID)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskDelete_RenumbersRemainingPositions(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]

	createTask(t, db, "a", todo.ID, user.ID)
	middle := createTask(t, db, "b", todo.ID, user.ID)
	createTask(t, db, "c", todo.ID, user.ID)

	if err := NewTaskService(db).Delete(middle.ID, user.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if got, want := columnPositions(t, db, todo.ID), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("positions after delete: got %v want %v", got, want)
	}
	if got, want := columnTitles(t, db, todo.ID), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("relative order after delete: got %v want %v", got, want)
	}
}

func TestTaskReorder_AppliesPermutation(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]

	a := createTask(t, db, "a", todo.ID, user.ID)
	b := createTask(t, db, "b", todo.ID, user.ID)
	c := createTask(t, db, "c", todo.ID, user.ID)

	svc := NewTaskService(db)
	err := svc.Reorder(todo.ID, []dto.TaskReorder{
		{TaskID: c.ID, NewPosition: 0},
		{TaskID: a.ID, NewPosition: 1},
		{TaskID: b.ID, NewPosition: 2},
	}, user.ID)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	if got, want := columnTitles(t, db, todo.ID), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order after reorder: got %v want %v", got, want)
	}
}

func TestTaskReorder_IdentityPermutationIsNoOp(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]

	a := createTask(t, db, "a", todo.ID, user.ID)
	b := createTask(t, db, "b", todo.ID, user.ID)

	svc := NewTaskService(db)
	identity := []dto.TaskReorder{
		{TaskID: a.ID, NewPosition: 0},
		{TaskID: b.ID, NewPosition: 1},
	}

	for i := 0; i < 2; i++ {
		if err := svc.Reorder(todo.ID, identity, user.ID); err != nil {
			t.Fatalf("identity reorder %d failed: %v", i, err)
		}
	}

	if got, want := columnTitles(t, db, todo.ID), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("identity reorder changed order: got %v want %v", got, want)
	}
}

func TestTaskReorder_UnknownTaskFailsAtomically(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]
	other := board.Columns[1]

	a := createTask(t, db, "a", todo.ID, user.ID)
	b := createTask(t, db, "b", todo.ID, user.ID)
	outsider := createTask(t, db, "outsider", other.ID, user.ID)

	err := NewTaskService(db).Reorder(todo.ID, []dto.TaskReorder{
		{TaskID: b.ID, NewPosition: 0},
		{TaskID: a.ID, NewPosition: 1},
		{TaskID: outsider.ID, NewPosition: 2},
	}, user.ID)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	// No partial effect: original order intact.
	if got, want := columnTitles(t, db, todo.ID), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("failed reorder must not move anything: got %v want %v", got, want)
	}
	var check models.Task
	db.First(&check, "id = ?", outsider.ID)
	if check.Position != 0 || check.ColumnID != other.ID {
		t.Error("outsider task must be untouched")
	}
}

func TestTaskReorder_ForeignColumnSeesNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	intruder := createUser(t, db, "intruder")
	board := createBoard(t, db, "Private", owner.ID)
	task := createTask(t, db, "a", board.Columns[0].ID, owner.ID)

	err := NewTaskService(db).Reorder(board.Columns[0].ID, []dto.TaskReorder{
		{TaskID: task.ID, NewPosition: 0},
	}, intruder.ID)
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestTaskMove_AppendsInDestinationAndCompactsSource(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]
	doing := board.Columns[1]

	createTask(t, db, "stay", todo.ID, user.ID)
	moved := createTask(t, db, "moving", todo.ID, user.ID)
	createTask(t, db, "also stay", todo.ID, user.ID)
	createTask(t, db, "existing", doing.ID, user.ID)

	if err := NewTaskService(db).Move(moved.ID, doing.ID, user.ID); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	var after models.Task
	db.First(&after, "id = ?", moved.ID)
	if after.ColumnID != doing.ID {
		t.Fatalf("task not moved: column = %d want %d", after.ColumnID, doing.ID)
	}
	if after.Position != 1 {
		t.Errorf("moved task should append after the existing one: position = %d, want 1", after.Position)
	}

	if got, want := columnPositions(t, db, todo.ID), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("source column not compacted: got %v want %v", got, want)
	}
}

func TestTaskMove_ForeignDestinationSeesNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	aliceBoard := createBoard(t, db, "Alice's", alice.ID)
	bobBoard := createBoard(t, db, "Bob's", bob.ID)
	task := createTask(t, db, "grounded", aliceBoard.Columns[0].ID, alice.ID)

	err := NewTaskService(db).Move(task.ID, bobBoard.Columns[0].ID, alice.ID)
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound for a foreign destination, got %v", err)
	}

	var check models.Task
	db.First(&check, "id = ?", task.ID)
	if check.ColumnID != aliceBoard.Columns[0].ID {
		t.Error("task must stay in its column when the destination is not owned")
	}
}

func TestTaskMove_SameColumnIsNoOp(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	board := createBoard(t, db, "Sprint 1", user.ID)
	todo := board.Columns[0]

	createTask(t, db, "a", todo.ID, user.ID)
	task := createTask(t, db, "b", todo.ID, user.ID)

	if err := NewTaskService(db).Move(task.ID, todo.ID, user.ID); err != nil {
		t.Fatalf("Move to same column failed: %v", err)
	}

	var check models.Task
	db.First(&check, "id = ?", task.ID)
	if check.Position != 1 {
		t.Errorf("same-column move must not change position: got %d", check.Position)
	}
}

func TestTaskDelete_OtherUserSeesNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	intruder := createUser(t, db, "intruder")
	board := createBoard(t, db, "Private", owner.ID)
	task := createTask(t, db, "safe", board.Columns[0].ID, owner.ID)

	err := NewTaskService(db).Delete(task.ID, intruder.ID)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	if count != 1 {
		t.Error("task must survive a foreign delete attempt")
	}
}

// End-to-end board scenario: seed, fill, reorder, read back.
func TestScenario_SprintBoardWorkflow(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user7")
	board := createBoard(t, db, "Sprint 1", user.ID)

	if len(board.Columns) != 3 {
		t.Fatalf("expected 3 default columns, got %d", len(board.Columns))
	}
	todo := board.Columns[0]

	fixBug := createTask(t, db, "Fix bug", todo.ID, user.ID)
	if fixBug.Position != 0 {
		t.Errorf("Fix bug: position = %d, want 0", fixBug.Position)
	}
	writeTests := createTask(t, db, "Write tests", todo.ID, user.ID)
	if writeTests.Position != 1 {
		t.Errorf("Write tests: position = %d, want 1", writeTests.Position)
	}

	err := NewTaskService(db).Reorder(todo.ID, []dto.TaskReorder{
		{TaskID: writeTests.ID, NewPosition: 0},
		{TaskID: fixBug.ID, NewPosition: 1},
	}, user.ID)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	fetched, err := NewBoardService(db).Get(board.ID, user.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	titles := make([]string, 0, 2)
	for _, task := range fetched.Columns[0].Tasks {
		titles = append(titles, task.Title)
	}
	if want := []string{"Write tests", "Fix bug"}; !reflect.DeepEqual(titles, want) {
		t.Errorf("final order: got %v want %v", titles, want)
	}
}
