package interfaces

import (
	"context"

	"moveplanner/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for shopping items.

type IItemRepository interface {
	Create(ctx context.Context, it entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Item, error)
	Update(ctx context.Context, it entities.Item) (entities.Item, error)
	SetPurchased(ctx context.Context, id string, purchased bool) (entities.Item, error)
	Delete(ctx context.Context, id string) error
}

// IItemPriceRepository abstracts DynamoDB persistence for price history.
// ListByItemID returns records in creation order; the last one is the
// item's current price.

type IItemPriceRepository interface {
	Create(ctx context.Context, p entities.ItemPrice) (entities.ItemPrice, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.ItemPrice, error)
	SetActualUnitCents(ctx context.Context, id string, actualUnitCents int64) (entities.ItemPrice, error)
	DeleteByItemID(ctx context.Context, itemID string) error
}

// ICategoryRepository abstracts DynamoDB persistence for categories.

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

// IRoomRepository abstracts DynamoDB persistence for rooms.

type IRoomRepository interface {
	Create(ctx context.Context, r entities.Room) (entities.Room, error)
	GetByID(ctx context.Context, id string) (entities.Room, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Room, error)
	Update(ctx context.Context, r entities.Room) (entities.Room, error)
	Delete(ctx context.Context, id string) error
}
