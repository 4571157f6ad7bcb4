package interfaces

import (
	"context"

	"moveplanner/internal/domain/entities"
)

// IActivityLogRepository abstracts DynamoDB persistence for the activity
// feed. Append-only; entries are never edited.

type IActivityLogRepository interface {
	Append(ctx context.Context, e entities.ActivityEntry) (entities.ActivityEntry, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.ActivityEntry, error)
}
