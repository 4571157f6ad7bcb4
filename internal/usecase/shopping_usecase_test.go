package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moveplanner/internal/domain/entities"
	mock_interfaces "moveplanner/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestShoppingUseCase_CreateItem(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewShoppingUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateItem(context.Background(), "ws-1", NewItemInput{Name: "  "})
		if !errors.Is(err, ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewShoppingUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateItem(context.Background(), "ws-1", NewItemInput{Name: "Blender", EstUnitCents: -1})
		if !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}
	})

	t.Run("priority out of range", func(t *testing.T) {
		uc := NewShoppingUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateItem(context.Background(), "ws-1", NewItemInput{Name: "Blender", Priority: 4})
		if !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("defaults and initial price record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		priceRepo := mock_interfaces.NewMockIItemPriceRepository(ctrl)
		uc := NewShoppingUseCase(itemRepo, priceRepo, nil, nil, nil)

		itemRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Item{})).DoAndReturn(
			func(_ context.Context, it entities.Item) (entities.Item, error) {
				if it.ID == "" || it.WorkspaceID != "ws-1" || it.Name != "Blender" {
					t.Fatalf("unexpected item: %+v", it)
				}
				if it.Quantity != 1 || it.Priority != 2 {
					t.Fatalf("expected defaults qty=1 priority=2, got qty=%d priority=%d", it.Quantity, it.Priority)
				}
				return it, nil
			},
		)
		priceRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ItemPrice{})).DoAndReturn(
			func(_ context.Context, p entities.ItemPrice) (entities.ItemPrice, error) {
				if p.EstUnitCents != 7999 || p.ActualUnitCents != nil {
					t.Fatalf("unexpected price record: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreateItem(context.Background(), "ws-1", NewItemInput{Name: " Blender ", EstUnitCents: 7999})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Prices) != 1 {
			t.Fatalf("expected one price record, got %d", len(res.Prices))
		}
	})
}

func TestShoppingUseCase_SetPurchased(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewShoppingUseCase(itemRepo, nil, nil, nil, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.Item{}, nil)

		_, err := uc.SetPurchased(context.Background(), "it-1", true, nil)
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("negative actual price", func(t *testing.T) {
		uc := NewShoppingUseCase(nil, nil, nil, nil, nil)
		bad := int64(-1)
		_, err := uc.SetPurchased(context.Background(), "it-1", true, &bad)
		if !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}
	})

	t.Run("actual price lands on latest record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		priceRepo := mock_interfaces.NewMockIItemPriceRepository(ctrl)
		uc := NewShoppingUseCase(itemRepo, priceRepo, nil, nil, nil)

		item := entities.Item{ID: "it-1", WorkspaceID: "ws-1", Name: "Blender"}
		itemRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(item, nil)
		purchased := item
		purchased.Purchased = true
		itemRepo.EXPECT().SetPurchased(gomock.Any(), "it-1", true).Return(purchased, nil)

		history := []entities.ItemPrice{
			{ID: "p-1", ItemID: "it-1", EstUnitCents: 8500, CreatedAt: time.Now().Add(-time.Hour)},
			{ID: "p-2", ItemID: "it-1", EstUnitCents: 7999, CreatedAt: time.Now()},
		}
		priceRepo.EXPECT().ListByItemID(gomock.Any(), "it-1").Return(history, nil)
		actual := int64(7450)
		withActual := history[1]
		withActual.ActualUnitCents = &actual
		priceRepo.EXPECT().SetActualUnitCents(gomock.Any(), "p-2", int64(7450)).Return(withActual, nil)

		// the final read-back
		itemRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(purchased, nil)
		priceRepo.EXPECT().ListByItemID(gomock.Any(), "it-1").Return([]entities.ItemPrice{history[0], withActual}, nil)

		res, err := uc.SetPurchased(context.Background(), "it-1", true, &actual)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Purchased {
			t.Fatalf("expected purchased item")
		}
		latest := res.LatestPrice()
		if latest == nil || latest.ActualUnitCents == nil || *latest.ActualUnitCents != 7450 {
			t.Fatalf("expected actual 7450 on latest record, got %+v", latest)
		}
	})

	t.Run("no history gets a record created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		priceRepo := mock_interfaces.NewMockIItemPriceRepository(ctrl)
		uc := NewShoppingUseCase(itemRepo, priceRepo, nil, nil, nil)

		item := entities.Item{ID: "it-1", WorkspaceID: "ws-1"}
		itemRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(item, nil)
		purchased := item
		purchased.Purchased = true
		itemRepo.EXPECT().SetPurchased(gomock.Any(), "it-1", true).Return(purchased, nil)

		priceRepo.EXPECT().ListByItemID(gomock.Any(), "it-1").Return(nil, nil)
		actual := int64(5000)
		priceRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ItemPrice{})).DoAndReturn(
			func(_ context.Context, p entities.ItemPrice) (entities.ItemPrice, error) {
				if p.ActualUnitCents == nil || *p.ActualUnitCents != 5000 || p.EstUnitCents != 5000 {
					t.Fatalf("unexpected price record: %+v", p)
				}
				return p, nil
			},
		)

		itemRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(purchased, nil)
		priceRepo.EXPECT().ListByItemID(gomock.Any(), "it-1").Return([]entities.ItemPrice{{ID: "p-1", ActualUnitCents: &actual}}, nil)

		if _, err := uc.SetPurchased(context.Background(), "it-1", true, &actual); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestShoppingUseCase_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	priceRepo := mock_interfaces.NewMockIItemPriceRepository(ctrl)
	uc := NewShoppingUseCase(itemRepo, priceRepo, nil, nil, nil)

	itemRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.Item{ID: "it-1", WorkspaceID: "ws-1"}, nil)
	priceRepo.EXPECT().DeleteByItemID(gomock.Any(), "it-1").Return(nil)
	itemRepo.EXPECT().Delete(gomock.Any(), "it-1").Return(nil)

	if err := uc.DeleteItem(context.Background(), "it-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShoppingUseCase_Categories(t *testing.T) {
	t.Run("create trims and validates", func(t *testing.T) {
		uc := NewShoppingUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateCategory(context.Background(), "ws-1", "  ", "#fff")
		if !errors.Is(err, ErrInvalidCategoryName) {
			t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewShoppingUseCase(nil, nil, categoryRepo, nil, nil)

		categoryRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Category{})).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.Name != "Garage" || c.Color != "#64748b" {
					t.Fatalf("unexpected category: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.CreateCategory(context.Background(), "ws-1", " Garage ", "#64748b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Garage" {
			t.Fatalf("expected Garage, got %q", res.Name)
		}
	})
}
