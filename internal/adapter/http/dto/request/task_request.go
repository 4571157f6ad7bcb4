package request

import (
	"moveplanner/internal/usecase"
)

type CreateTaskRequest struct {
	Title      string `json:"title" binding:"required"`
	AssignedTo string `json:"assigned_to"`
	CategoryID string `json:"category_id"`
	DueDate    string `json:"due_date"`
	Priority   int    `json:"priority"`
	Notes      string `json:"notes"`
}

func (r CreateTaskRequest) ToInput(workspaceID string) usecase.NewTaskInput {
	return usecase.NewTaskInput{
		WorkspaceID: workspaceID,
		Title:       r.Title,
		AssignedTo:  r.AssignedTo,
		CategoryID:  r.CategoryID,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Notes:       r.Notes,
	}
}

type UpdateTaskRequest struct {
	Title      *string `json:"title"`
	AssignedTo *string `json:"assigned_to"`
	CategoryID *string `json:"category_id"`
	DueDate    *string `json:"due_date"`
	Priority   *int    `json:"priority"`
	Notes      *string `json:"notes"`
}

func (r UpdateTaskRequest) ToUpdate() usecase.TaskUpdate {
	return usecase.TaskUpdate{
		Title:      r.Title,
		AssignedTo: r.AssignedTo,
		CategoryID: r.CategoryID,
		DueDate:    r.DueDate,
		Priority:   r.Priority,
		Notes:      r.Notes,
	}
}

// DoneRequest toggles a task's completion state.

type DoneRequest struct {
	Done bool `json:"done"`
}
