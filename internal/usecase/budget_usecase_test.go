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

func TestBudgetUseCase_InitializeBudgets(t *testing.T) {
	t.Run("invalid workspace id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.InitializeBudgets(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidWorkspaceID) {
			t.Fatalf("expected ErrInvalidWorkspaceID, got %v", err)
		}
	})

	t.Run("creates zero budgets only for uncovered rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewBudgetUseCase(budgetRepo, nil, roomRepo, nil, nil, nil)

		roomRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.Room{
			{ID: "room-1", WorkspaceID: "ws-1", Name: "Kitchen"},
			{ID: "room-2", WorkspaceID: "ws-1", Name: "Den"},
		}, nil)
		budgetRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.RoomBudget{
			{ID: "b-1", WorkspaceID: "ws-1", RoomID: "room-1", PlannedCents: 40000},
		}, nil)
		budgetRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RoomBudget{})).DoAndReturn(
			func(_ context.Context, b entities.RoomBudget) (entities.RoomBudget, error) {
				if b.RoomID != "room-2" || b.PlannedCents != 0 {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.SavingsTargetSource != entities.SavingsTargetPlanned {
					t.Fatalf("expected planned target source, got %s", b.SavingsTargetSource)
				}
				return b, nil
			},
		)

		created, err := uc.InitializeBudgets(context.Background(), "ws-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 1 {
			t.Fatalf("expected 1 created budget, got %d", len(created))
		}
	})

	t.Run("all rooms covered is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewBudgetUseCase(budgetRepo, nil, roomRepo, nil, nil, nil)

		roomRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.Room{
			{ID: "room-1", WorkspaceID: "ws-1"},
		}, nil)
		budgetRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.RoomBudget{
			{ID: "b-1", WorkspaceID: "ws-1", RoomID: "room-1"},
		}, nil)

		created, err := uc.InitializeBudgets(context.Background(), "ws-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 0 {
			t.Fatalf("expected no created budgets, got %d", len(created))
		}
	})
}

func TestBudgetUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
	roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	priceRepo := mock_interfaces.NewMockIItemPriceRepository(ctrl)
	uc := NewBudgetUseCase(budgetRepo, nil, roomRepo, itemRepo, priceRepo, nil)

	rooms := []entities.Room{{ID: "room-1", WorkspaceID: "ws-1", Name: "Kitchen"}}
	budgets := []entities.RoomBudget{{ID: "b-1", WorkspaceID: "ws-1", RoomID: "room-1", PlannedCents: 3000}}

	// init pass, then the read pass
	roomRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(rooms, nil).Times(2)
	budgetRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(budgets, nil).Times(2)

	actual := int64(1800)
	itemRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.Item{
		{ID: "it-1", WorkspaceID: "ws-1", RoomID: "room-1", Quantity: 2},
		{ID: "it-2", WorkspaceID: "ws-1", RoomID: "room-1", Quantity: 1, Purchased: true},
	}, nil)
	priceRepo.EXPECT().ListByItemID(gomock.Any(), "it-1").Return([]entities.ItemPrice{
		{ID: "p-1", ItemID: "it-1", EstUnitCents: 1000, CreatedAt: time.Now()},
	}, nil)
	priceRepo.EXPECT().ListByItemID(gomock.Any(), "it-2").Return([]entities.ItemPrice{
		{ID: "p-2", ItemID: "it-2", EstUnitCents: 2000, ActualUnitCents: &actual, CreatedAt: time.Now()},
	}, nil)

	overview, err := uc.Summary(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview.Rooms) != 1 {
		t.Fatalf("expected 1 room summary, got %d", len(overview.Rooms))
	}
	room := overview.Rooms[0]
	if room.EstimatedCents != 4000 {
		t.Fatalf("expected estimated 4000, got %d", room.EstimatedCents)
	}
	if room.ActualCents != 1800 {
		t.Fatalf("expected actual 1800, got %d", room.ActualCents)
	}
	if room.SpentCents != 3800 {
		t.Fatalf("expected spent 3800, got %d", room.SpentCents)
	}
	if !room.OverBudget() {
		t.Fatalf("expected room over budget")
	}
	if len(overview.OverBudgetRooms) != 1 || overview.OverBudgetRooms[0] != "room-1" {
		t.Fatalf("expected room-1 flagged over budget, got %v", overview.OverBudgetRooms)
	}
}

func TestBudgetUseCase_UpdateBudget(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
		uc := NewBudgetUseCase(budgetRepo, nil, nil, nil, nil, nil)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.RoomBudget{}, nil)

		_, err := uc.UpdateBudget(context.Background(), "b-1", RoomBudgetUpdate{})
		if !errors.Is(err, ErrRoomBudgetNotFound) {
			t.Fatalf("expected ErrRoomBudgetNotFound, got %v", err)
		}
	})

	t.Run("negative planned amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
		uc := NewBudgetUseCase(budgetRepo, nil, nil, nil, nil, nil)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.RoomBudget{ID: "b-1"}, nil)

		planned := int64(-1)
		_, err := uc.UpdateBudget(context.Background(), "b-1", RoomBudgetUpdate{PlannedCents: &planned})
		if !errors.Is(err, ErrInvalidPlannedAmount) {
			t.Fatalf("expected ErrInvalidPlannedAmount, got %v", err)
		}
	})

	t.Run("updates planned and clears target date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
		uc := NewBudgetUseCase(budgetRepo, nil, nil, nil, nil, nil)

		existingDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.RoomBudget{
			ID: "b-1", WorkspaceID: "ws-1", RoomID: "room-1", PlannedCents: 1000, TargetDate: &existingDate,
		}, nil)
		budgetRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.RoomBudget{})).DoAndReturn(
			func(_ context.Context, b entities.RoomBudget) (entities.RoomBudget, error) {
				if b.PlannedCents != 50000 || b.TargetDate != nil {
					t.Fatalf("unexpected budget: %+v", b)
				}
				return b, nil
			},
		)

		planned := int64(50000)
		clear := ""
		res, err := uc.UpdateBudget(context.Background(), "b-1", RoomBudgetUpdate{PlannedCents: &planned, TargetDate: &clear})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PlannedCents != 50000 {
			t.Fatalf("expected planned 50000, got %d", res.PlannedCents)
		}
	})
}

func TestBudgetUseCase_CreateDeposit(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateDeposit(context.Background(), "ws-1", NewDepositInput{RoomID: "room-1", Date: "2026-09-01", AmountCents: 0})
		if !errors.Is(err, ErrZeroDepositAmount) {
			t.Fatalf("expected ErrZeroDepositAmount, got %v", err)
		}
	})

	t.Run("room in another workspace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewBudgetUseCase(nil, nil, roomRepo, nil, nil, nil)

		roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(entities.Room{ID: "room-1", WorkspaceID: "ws-other"}, nil)

		_, err := uc.CreateDeposit(context.Background(), "ws-1", NewDepositInput{RoomID: "room-1", Date: "2026-09-01", AmountCents: 10000})
		if !errors.Is(err, ErrRoomNotFound) {
			t.Fatalf("expected ErrRoomNotFound, got %v", err)
		}
	})

	t.Run("negative amounts are withdrawals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		depositRepo := mock_interfaces.NewMockISavingsDepositRepository(ctrl)
		uc := NewBudgetUseCase(nil, depositRepo, roomRepo, nil, nil, nil)

		roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(entities.Room{ID: "room-1", WorkspaceID: "ws-1"}, nil)
		depositRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SavingsDeposit{})).DoAndReturn(
			func(_ context.Context, d entities.SavingsDeposit) (entities.SavingsDeposit, error) {
				if d.AmountCents != -2000 {
					t.Fatalf("expected amount -2000, got %d", d.AmountCents)
				}
				if d.Date.Format("2006-01-02") != "2026-09-01" {
					t.Fatalf("unexpected date: %v", d.Date)
				}
				return d, nil
			},
		)

		res, err := uc.CreateDeposit(context.Background(), "ws-1", NewDepositInput{RoomID: "room-1", Date: "2026-09-01", AmountCents: -2000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AmountCents != -2000 {
			t.Fatalf("expected -2000, got %d", res.AmountCents)
		}
	})
}

func TestBudgetUseCase_ListDeposits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	depositRepo := mock_interfaces.NewMockISavingsDepositRepository(ctrl)
	uc := NewBudgetUseCase(nil, depositRepo, nil, nil, nil, nil)

	day := func(d int) time.Time { return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC) }
	depositRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.SavingsDeposit{
		{ID: "d-1", RoomID: "room-1", Date: day(1), AmountCents: 100},
		{ID: "d-2", RoomID: "room-2", Date: day(5), AmountCents: 200},
		{ID: "d-3", RoomID: "room-1", Date: day(3), AmountCents: 300},
	}, nil)

	deposits, err := uc.ListDeposits(context.Background(), "ws-1", "room-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deposits) != 2 {
		t.Fatalf("expected 2 deposits, got %d", len(deposits))
	}
	if deposits[0].ID != "d-3" || deposits[1].ID != "d-1" {
		t.Fatalf("expected newest first, got %v then %v", deposits[0].ID, deposits[1].ID)
	}
}
