package interfaces

import (
	"context"

	"moveplanner/internal/domain/entities"
)

// IRoomBudgetRepository abstracts DynamoDB persistence for room budgets.
// One budget exists per (workspace, room) pair; GetByRoomID is how the
// init routine decides whether a room still needs one.

type IRoomBudgetRepository interface {
	Create(ctx context.Context, b entities.RoomBudget) (entities.RoomBudget, error)
	GetByID(ctx context.Context, id string) (entities.RoomBudget, error)
	GetByRoomID(ctx context.Context, workspaceID, roomID string) (entities.RoomBudget, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.RoomBudget, error)
	Update(ctx context.Context, b entities.RoomBudget) (entities.RoomBudget, error)
	Delete(ctx context.Context, id string) error
}

// ISavingsDepositRepository abstracts DynamoDB persistence for the signed
// savings ledger.

type ISavingsDepositRepository interface {
	Create(ctx context.Context, d entities.SavingsDeposit) (entities.SavingsDeposit, error)
	GetByID(ctx context.Context, id string) (entities.SavingsDeposit, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.SavingsDeposit, error)
	Update(ctx context.Context, d entities.SavingsDeposit) (entities.SavingsDeposit, error)
	Delete(ctx context.Context, id string) error
}
