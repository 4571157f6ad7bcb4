package response

import (
	"time"

	"moveplanner/internal/domain/entities"
)

type TaskResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	AssignedTo  string    `json:"assigned_to"`
	CategoryID  string    `json:"category_id,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    int       `json:"priority"`
	Notes       string    `json:"notes,omitempty"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		Title:       t.Title,
		AssignedTo:  string(t.AssignedTo),
		CategoryID:  t.CategoryID,
		DueDate:     formatDatePtr(t.DueDate),
		Priority:    t.Priority,
		Notes:       t.Notes,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
	}
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}
