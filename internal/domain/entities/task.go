package entities

import "time"

// AssignedTo says which of the two collaborators owns a task.

type AssignedTo string

const (
	AssignedToMe   AssignedTo = "me"
	AssignedToHim  AssignedTo = "him"
	AssignedToBoth AssignedTo = "both"
)

// Task is a to-do entry. Priority runs 1 (high) to 3 (low).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type Task struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Title       string     `json:"title"`
	AssignedTo  AssignedTo `json:"assigned_to"`
	CategoryID  string     `json:"category_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    int        `json:"priority"`
	Notes       string     `json:"notes,omitempty"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
}
