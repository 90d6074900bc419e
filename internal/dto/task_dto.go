package dto

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ColumnID    uint   `json:"column_id"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MoveTaskRequest struct {
	NewColumnID uint `json:"new_column_id"`
}
