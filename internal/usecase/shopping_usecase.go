package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errors.New("item not found")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidItemName     = errors.New("invalid item name")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidPriority     = errors.New("priority must be between 1 and 3")
	ErrInvalidUnitPrice    = errors.New("unit price must be a non-negative cents amount")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrRoomNotFound        = errors.New("room not found")
	ErrInvalidRoomID       = errors.New("invalid room id")
	ErrInvalidRoomName     = errors.New("invalid room name")
)

// NewItemInput carries everything needed to put an item on the list. The
// estimate becomes the first record of the item's price history.

type NewItemInput struct {
	Name         string
	Link         string
	ImageURL     string
	CategoryID   string
	RoomID       string
	CompanyID    string
	Quantity     int64
	Priority     int
	Notes        string
	EstUnitCents int64
}

// ItemUpdate carries the editable item fields; nil leaves a field as is.

type ItemUpdate struct {
	Name       *string
	Link       *string
	ImageURL   *string
	CategoryID *string
	RoomID     *string
	CompanyID  *string
	Quantity   *int64
	Priority   *int
	Notes      *string
}

// ItemFilter narrows a workspace item listing.

type ItemFilter struct {
	RoomID     string
	CategoryID string
	CompanyID  string
	Purchased  *bool
}

/// IShoppingUseCase exposes the shopping list: items with their price
// history, plus the category and room tags they are grouped by.

type IShoppingUseCase interface {
	CreateItem(ctx context.Context, workspaceID string, in NewItemInput) (entities.ItemWithPrices, error)
	GetItem(ctx context.Context, itemID string) (entities.ItemWithPrices, error)
	ListItems(ctx context.Context, workspaceID string, filter ItemFilter) ([]entities.ItemWithPrices, error)
	UpdateItem(ctx context.Context, itemID string, upd ItemUpdate) (entities.Item, error)
	SetPurchased(ctx context.Context, itemID string, purchased bool, actualUnitCents *int64) (entities.ItemWithPrices, error)
	AddPrice(ctx context.Context, itemID string, estUnitCents int64) (entities.ItemPrice, error)
	DeleteItem(ctx context.Context, itemID string) error

	CreateCategory(ctx context.Context, workspaceID, name, color string) (entities.Category, error)
	ListCategories(ctx context.Context, workspaceID string) ([]entities.Category, error)
	UpdateCategory(ctx context.Context, categoryID, name, color string) (entities.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	CreateRoom(ctx context.Context, workspaceID, name string) (entities.Room, error)
	ListRooms(ctx context.Context, workspaceID string) ([]entities.Room, error)
	UpdateRoom(ctx context.Context, roomID, name string) (entities.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type ShoppingUseCase struct {
	itemRepo     interfaces.IItemRepository
	priceRepo    interfaces.IItemPriceRepository
	categoryRepo interfaces.ICategoryRepository
	roomRepo     interfaces.IRoomRepository
	activityLog  interfaces.IActivityLogRepository
}

var _ IShoppingUseCase = (*ShoppingUseCase)(nil)

func NewShoppingUseCase(
	itemRepo interfaces.IItemRepository,
	priceRepo interfaces.IItemPriceRepository,
	categoryRepo interfaces.ICategoryRepository,
	roomRepo interfaces.IRoomRepository,
	activityLog interfaces.IActivityLogRepository,
) *ShoppingUseCase {
	return &ShoppingUseCase{
		itemRepo:     itemRepo,
		priceRepo:    priceRepo,
		categoryRepo: categoryRepo,
		roomRepo:     roomRepo,
		activityLog:  activityLog,
	}
}

func (u *ShoppingUseCase) CreateItem(ctx context.Context, workspaceID string, in NewItemInput) (entities.ItemWithPrices, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.ItemWithPrices{}, ErrInvalidWorkspaceID
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.ItemWithPrices{}, ErrInvalidItemName
	}
	if in.EstUnitCents < 0 {
		return entities.ItemWithPrices{}, ErrInvalidUnitPrice
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return entities.ItemWithPrices{}, ErrInvalidQuantity
	}
	if in.Priority == 0 {
		in.Priority = 2
	}
	if in.Priority < 1 || in.Priority > 3 {
		return entities.ItemWithPrices{}, ErrInvalidPriority
	}

	now := time.Now().UTC()
	item := entities.Item{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        strings.TrimSpace(in.Name),
		Link:        strings.TrimSpace(in.Link),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		CategoryID:  strings.TrimSpace(in.CategoryID),
		RoomID:      strings.TrimSpace(in.RoomID),
		CompanyID:   strings.TrimSpace(in.CompanyID),
		Quantity:    in.Quantity,
		Priority:    in.Priority,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	created, err := u.itemRepo.Create(ctx, item)
	if err != nil {
		return entities.ItemWithPrices{}, err
	}

	price, err := u.priceRepo.Create(ctx, entities.ItemPrice{
		ID:           uuid.NewString(),
		ItemID:       created.ID,
		EstUnitCents: in.EstUnitCents,
		CreatedAt:    now,
	})
	if err != nil {
		return entities.ItemWithPrices{}, err
	}

	recordActivity(ctx, u.activityLog, workspaceID, "", "item.created", "item", created.ID, map[string]interface{}{
		"name":           created.Name,
		"est_unit_cents": in.EstUnitCents,
	})
	return entities.ItemWithPrices{Item: created, Prices: []entities.ItemPrice{price}}, nil
}

func (u *ShoppingUseCase) GetItem(ctx context.Context, itemID string) (entities.ItemWithPrices, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ItemWithPrices{}, ErrInvalidItemID
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.ItemWithPrices{}, err
	}
	if item.ID == "" {
		return entities.ItemWithPrices{}, ErrItemNotFound
	}

	prices, err := u.priceRepo.ListByItemID(ctx, item.ID)
	if err != nil {
		return entities.ItemWithPrices{}, err
	}
	return entities.ItemWithPrices{Item: item, Prices: prices}, nil
}

func (u *ShoppingUseCase) ListItems(ctx context.Context, workspaceID string, filter ItemFilter) ([]entities.ItemWithPrices, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}

	items, err := u.itemRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ItemWithPrices, 0, len(items))
	for _, it := range items {
		if filter.RoomID != "" && it.RoomID != filter.RoomID {
			continue
		}
		if filter.CategoryID != "" && it.CategoryID != filter.CategoryID {
			continue
		}
		if filter.CompanyID != "" && it.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Purchased != nil && it.Purchased != *filter.Purchased {
			continue
		}
		prices, err := u.priceRepo.ListByItemID(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.ItemWithPrices{Item: it, Prices: prices})
	}
	return out, nil
}

func (u *ShoppingUseCase) UpdateItem(ctx context.Context, itemID string, upd ItemUpdate) (entities.Item, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Item{}, ErrInvalidItemID
	}

	current, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	if current.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return entities.Item{}, ErrInvalidItemName
		}
		current.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Link != nil {
		current.Link = strings.TrimSpace(*upd.Link)
	}
	if upd.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*upd.ImageURL)
	}
	if upd.CategoryID != nil {
		current.CategoryID = strings.TrimSpace(*upd.CategoryID)
	}
	if upd.RoomID != nil {
		current.RoomID = strings.TrimSpace(*upd.RoomID)
	}
	if upd.CompanyID != nil {
		current.CompanyID = strings.TrimSpace(*upd.CompanyID)
	}
	if upd.Quantity != nil {
		if *upd.Quantity < 1 {
			return entities.Item{}, ErrInvalidQuantity
		}
		current.Quantity = *upd.Quantity
	}
	if upd.Priority != nil {
		if *upd.Priority < 1 || *upd.Priority > 3 {
			return entities.Item{}, ErrInvalidPriority
		}
		current.Priority = *upd.Priority
	}
	if upd.Notes != nil {
		current.Notes = *upd.Notes
	}

	return u.itemRepo.Update(ctx, current)
}

// SetPurchased flips the purchased flag. When an item is purchased with an
// actual price, the price lands on the latest history record; an item that
// somehow has no history gets one created so the receipt is not lost.
func (u *ShoppingUseCase) SetPurchased(ctx context.Context, itemID string, purchased bool, actualUnitCents *int64) (entities.ItemWithPrices, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ItemWithPrices{}, ErrInvalidItemID
	}
	if actualUnitCents != nil && *actualUnitCents < 0 {
		return entities.ItemWithPrices{}, ErrInvalidUnitPrice
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.ItemWithPrices{}, err
	}
	if item.ID == "" {
		return entities.ItemWithPrices{}, ErrItemNotFound
	}

	item, err = u.itemRepo.SetPurchased(ctx, itemID, purchased)
	if err != nil {
		return entities.ItemWithPrices{}, err
	}

	if purchased && actualUnitCents != nil {
		prices, err := u.priceRepo.ListByItemID(ctx, itemID)
		if err != nil {
			return entities.ItemWithPrices{}, err
		}
		if len(prices) == 0 {
			_, err = u.priceRepo.Create(ctx, entities.ItemPrice{
				ID:              uuid.NewString(),
				ItemID:          itemID,
				EstUnitCents:    *actualUnitCents,
				ActualUnitCents: actualUnitCents,
				CreatedAt:       time.Now().UTC(),
			})
		} else {
			latest := prices[len(prices)-1]
			_, err = u.priceRepo.SetActualUnitCents(ctx, latest.ID, *actualUnitCents)
		}
		if err != nil {
			return entities.ItemWithPrices{}, err
		}
	}

	log.Printf("[shopping][usecase] purchase toggled item_id=%s purchased=%v", itemID, purchased)
	recordActivity(ctx, u.activityLog, item.WorkspaceID, "", "item.purchase_toggled", "item", item.ID, map[string]interface{}{
		"purchased": purchased,
	})

	return u.GetItem(ctx, itemID)
}

// AddPrice records a re-estimate; the new record becomes the item's
// current price.
func (u *ShoppingUseCase) AddPrice(ctx context.Context, itemID string, estUnitCents int64) (entities.ItemPrice, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ItemPrice{}, ErrInvalidItemID
	}
	if estUnitCents < 0 {
		return entities.ItemPrice{}, ErrInvalidUnitPrice
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.ItemPrice{}, err
	}
	if item.ID == "" {
		return entities.ItemPrice{}, ErrItemNotFound
	}

	return u.priceRepo.Create(ctx, entities.ItemPrice{
		ID:           uuid.NewString(),
		ItemID:       itemID,
		EstUnitCents: estUnitCents,
		CreatedAt:    time.Now().UTC(),
	})
}

func (u *ShoppingUseCase) DeleteItem(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidItemID
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ID == "" {
		return ErrItemNotFound
	}

	// Price history goes with the item.
	if err := u.priceRepo.DeleteByItemID(ctx, itemID); err != nil {
		return err
	}
	return u.itemRepo.Delete(ctx, itemID)
}

func (u *ShoppingUseCase) CreateCategory(ctx context.Context, workspaceID, name, color string) (entities.Category, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Category{}, ErrInvalidWorkspaceID
	}
	if strings.TrimSpace(name) == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	return u.categoryRepo.Create(ctx, entities.Category{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        strings.TrimSpace(name),
		Color:       strings.TrimSpace(color),
	})
}

func (u *ShoppingUseCase) ListCategories(ctx context.Context, workspaceID string) ([]entities.Category, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.categoryRepo.ListByWorkspaceID(ctx, workspaceID)
}

func (u *ShoppingUseCase) UpdateCategory(ctx context.Context, categoryID, name, color string) (entities.Category, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}
	if strings.TrimSpace(name) == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	current, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return entities.Category{}, err
	}
	if current.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}

	current.Name = strings.TrimSpace(name)
	current.Color = strings.TrimSpace(color)
	return u.categoryRepo.Update(ctx, current)
}

func (u *ShoppingUseCase) DeleteCategory(ctx context.Context, categoryID string) error {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return ErrInvalidCategoryID
	}

	current, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrCategoryNotFound
	}
	return u.categoryRepo.Delete(ctx, categoryID)
}

func (u *ShoppingUseCase) CreateRoom(ctx context.Context, workspaceID, name string) (entities.Room, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Room{}, ErrInvalidWorkspaceID
	}
	if strings.TrimSpace(name) == "" {
		return entities.Room{}, ErrInvalidRoomName
	}

	return u.roomRepo.Create(ctx, entities.Room{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        strings.TrimSpace(name),
	})
}

func (u *ShoppingUseCase) ListRooms(ctx context.Context, workspaceID string) ([]entities.Room, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.roomRepo.ListByWorkspaceID(ctx, workspaceID)
}

func (u *ShoppingUseCase) UpdateRoom(ctx context.Context, roomID, name string) (entities.Room, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.Room{}, ErrInvalidRoomID
	}
	if strings.TrimSpace(name) == "" {
		return entities.Room{}, ErrInvalidRoomName
	}

	current, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return entities.Room{}, err
	}
	if current.ID == "" {
		return entities.Room{}, ErrRoomNotFound
	}

	current.Name = strings.TrimSpace(name)
	return u.roomRepo.Update(ctx, current)
}

// DeleteRoom removes the room tag. Items keep their dangling room id and
// simply drop out of room groupings, matching the product behavior.
func (u *ShoppingUseCase) DeleteRoom(ctx context.Context, roomID string) error {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return ErrInvalidRoomID
	}

	current, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrRoomNotFound
	}
	return u.roomRepo.Delete(ctx, roomID)
}
