package interfaces

import (
	"context"

	"moveplanner/internal/domain/entities"
)

// ITaskRepository abstracts DynamoDB persistence for tasks.

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Task, error)
	Update(ctx context.Context, t entities.Task) (entities.Task, error)
	SetDone(ctx context.Context, id string, done bool) (entities.Task, error)
	Delete(ctx context.Context, id string) error
}
