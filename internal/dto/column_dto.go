package dto

type CreateColumnRequest struct {
	Name    string `json:"name"`
	BoardID uint   `json:"board_id"`
}

type UpdateColumnRequest struct {
	Name string `json:"name"`
}

// TaskReorder is one (task, new position) pair of a bulk reorder.
type TaskReorder struct {
	TaskID      uint `json:"task_id"`
	NewPosition int  `json:"new_position"`
}
