package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"moveplanner/internal/domain/budgeting"
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRoomBudgetNotFound     = errors.New("room budget not found")
	ErrInvalidRoomBudgetID    = errors.New("invalid room budget id")
	ErrInvalidPlannedAmount   = errors.New("planned budget must be a non-negative cents amount")
	ErrRoomBudgetExists       = errors.New("room already has a budget")
	ErrSavingsDepositNotFound = errors.New("savings deposit not found")
	ErrInvalidDepositID       = errors.New("invalid savings deposit id")
	ErrZeroDepositAmount      = errors.New("deposit amount must not be zero")
	ErrInvalidTargetSource    = errors.New("invalid savings target source")
)

// RoomBudgetUpdate carries the editable budget fields. Nil means "leave
// unchanged".

type RoomBudgetUpdate struct {
	PlannedCents        *int64
	TargetDate          *string // RFC3339 date or empty string to clear
	SavingsTargetSource *entities.SavingsTargetSource
}

// NewDepositInput describes a savings ledger entry. AmountCents is signed;
// withdrawals are negative.

type NewDepositInput struct {
	RoomID      string
	Date        string
	AmountCents int64
	Note        string
}

// IBudgetUseCase exposes budget tracking for a workspace: the idempotent
// zero-budget initialization, the per-room summary, savings deposits and
// savings goals.

type IBudgetUseCase interface {
	InitializeBudgets(ctx context.Context, workspaceID string) ([]entities.RoomBudget, error)
	ListBudgets(ctx context.Context, workspaceID string) ([]entities.RoomBudget, error)
	Summary(ctx context.Context, workspaceID string) (budgeting.Overview, error)
	UpdateBudget(ctx context.Context, budgetID string, upd RoomBudgetUpdate) (entities.RoomBudget, error)
	CreateDeposit(ctx context.Context, workspaceID string, in NewDepositInput) (entities.SavingsDeposit, error)
	ListDeposits(ctx context.Context, workspaceID, roomID string) ([]entities.SavingsDeposit, error)
	UpdateDeposit(ctx context.Context, depositID string, in NewDepositInput) (entities.SavingsDeposit, error)
	DeleteDeposit(ctx context.Context, depositID string) error
	SavingsGoals(ctx context.Context, workspaceID string) ([]budgeting.SavingsGoal, error)
}

type BudgetUseCase struct {
	budgetRepo  interfaces.IRoomBudgetRepository
	depositRepo interfaces.ISavingsDepositRepository
	roomRepo    interfaces.IRoomRepository
	itemRepo    interfaces.IItemRepository
	priceRepo   interfaces.IItemPriceRepository
	activityLog interfaces.IActivityLogRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	budgetRepo interfaces.IRoomBudgetRepository,
	depositRepo interfaces.ISavingsDepositRepository,
	roomRepo interfaces.IRoomRepository,
	itemRepo interfaces.IItemRepository,
	priceRepo interfaces.IItemPriceRepository,
	activityLog interfaces.IActivityLogRepository,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgetRepo:  budgetRepo,
		depositRepo: depositRepo,
		roomRepo:    roomRepo,
		itemRepo:    itemRepo,
		priceRepo:   priceRepo,
		activityLog: activityLog,
	}
}

// InitializeBudgets creates a zero planned budget for every room that does
// not have one yet and returns the created records. Rooms that already
// have a budget are left alone, so the call is safe to repeat; concurrent
// callers can at worst both write the same constant zero record.
func (u *BudgetUseCase) InitializeBudgets(ctx context.Context, workspaceID string) ([]entities.RoomBudget, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}

	rooms, err := u.roomRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	budgets, err := u.budgetRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	haveBudget := make(map[string]bool, len(budgets))
	for _, b := range budgets {
		haveBudget[b.RoomID] = true
	}

	created := make([]entities.RoomBudget, 0)
	for _, room := range rooms {
		if haveBudget[room.ID] {
			continue
		}
		b, err := u.budgetRepo.Create(ctx, entities.RoomBudget{
			ID:                  uuid.NewString(),
			WorkspaceID:         workspaceID,
			RoomID:              room.ID,
			PlannedCents:        0,
			SavingsTargetSource: entities.SavingsTargetPlanned,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, b)
	}
	if len(created) > 0 {
		log.Printf("[budget][usecase] initialized %d zero budgets workspace_id=%s", len(created), workspaceID)
	}
	return created, nil
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context, workspaceID string) ([]entities.RoomBudget, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.budgetRepo.ListByWorkspaceID(ctx, workspaceID)
}

// Summary aggregates the per-room figures. Viewing the summary is what
// first materializes budgets, so missing ones are initialized here.
func (u *BudgetUseCase) Summary(ctx context.Context, workspaceID string) (budgeting.Overview, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return budgeting.Overview{}, ErrInvalidWorkspaceID
	}

	if _, err := u.InitializeBudgets(ctx, workspaceID); err != nil {
		return budgeting.Overview{}, err
	}

	budgets, err := u.budgetRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return budgeting.Overview{}, err
	}
	rooms, err := u.roomRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return budgeting.Overview{}, err
	}
	items, err := u.loadItemsWithPrices(ctx, workspaceID)
	if err != nil {
		return budgeting.Overview{}, err
	}

	return budgeting.Aggregate(budgets, rooms, items), nil
}

func (u *BudgetUseCase) UpdateBudget(ctx context.Context, budgetID string, upd RoomBudgetUpdate) (entities.RoomBudget, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.RoomBudget{}, ErrInvalidRoomBudgetID
	}

	current, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.RoomBudget{}, err
	}
	if current.ID == "" {
		return entities.RoomBudget{}, ErrRoomBudgetNotFound
	}

	if upd.PlannedCents != nil {
		if *upd.PlannedCents < 0 {
			return entities.RoomBudget{}, ErrInvalidPlannedAmount
		}
		current.PlannedCents = *upd.PlannedCents
	}
	if upd.TargetDate != nil {
		if *upd.TargetDate == "" {
			current.TargetDate = nil
		} else {
			t, err := parseDate(*upd.TargetDate)
			if err != nil {
				return entities.RoomBudget{}, err
			}
			current.TargetDate = &t
		}
	}
	if upd.SavingsTargetSource != nil {
		switch *upd.SavingsTargetSource {
		case entities.SavingsTargetPlanned, entities.SavingsTargetEst, entities.SavingsTargetActual:
			current.SavingsTargetSource = *upd.SavingsTargetSource
		default:
			return entities.RoomBudget{}, ErrInvalidTargetSource
		}
	}

	updated, err := u.budgetRepo.Update(ctx, current)
	if err != nil {
		return entities.RoomBudget{}, err
	}

	recordActivity(ctx, u.activityLog, updated.WorkspaceID, "", "budget.updated", "room_budget", updated.ID, map[string]interface{}{
		"room_id":       updated.RoomID,
		"planned_cents": updated.PlannedCents,
	})
	return updated, nil
}

func (u *BudgetUseCase) CreateDeposit(ctx context.Context, workspaceID string, in NewDepositInput) (entities.SavingsDeposit, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.SavingsDeposit{}, ErrInvalidWorkspaceID
	}
	if strings.TrimSpace(in.RoomID) == "" {
		return entities.SavingsDeposit{}, ErrInvalidRoomID
	}
	if in.AmountCents == 0 {
		return entities.SavingsDeposit{}, ErrZeroDepositAmount
	}

	room, err := u.roomRepo.GetByID(ctx, strings.TrimSpace(in.RoomID))
	if err != nil {
		return entities.SavingsDeposit{}, err
	}
	if room.ID == "" || room.WorkspaceID != workspaceID {
		return entities.SavingsDeposit{}, ErrRoomNotFound
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return entities.SavingsDeposit{}, err
	}

	deposit := entities.SavingsDeposit{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		RoomID:      room.ID,
		Date:        date,
		AmountCents: in.AmountCents,
		Note:        strings.TrimSpace(in.Note),
	}
	created, err := u.depositRepo.Create(ctx, deposit)
	if err != nil {
		return entities.SavingsDeposit{}, err
	}

	kind := "savings.deposit"
	if created.AmountCents < 0 {
		kind = "savings.withdrawal"
	}
	recordActivity(ctx, u.activityLog, workspaceID, "", kind, "savings_deposit", created.ID, map[string]interface{}{
		"room_id":      created.RoomID,
		"amount_cents": created.AmountCents,
	})
	return created, nil
}

// ListDeposits returns a workspace's deposits, newest date first. An empty
// roomID means all rooms.
func (u *BudgetUseCase) ListDeposits(ctx context.Context, workspaceID, roomID string) ([]entities.SavingsDeposit, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}

	deposits, err := u.depositRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	roomID = strings.TrimSpace(roomID)
	if roomID != "" {
		filtered := deposits[:0]
		for _, d := range deposits {
			if d.RoomID == roomID {
				filtered = append(filtered, d)
			}
		}
		deposits = filtered
	}

	sort.SliceStable(deposits, func(i, j int) bool {
		return deposits[i].Date.After(deposits[j].Date)
	})
	return deposits, nil
}

func (u *BudgetUseCase) UpdateDeposit(ctx context.Context, depositID string, in NewDepositInput) (entities.SavingsDeposit, error) {
	depositID = strings.TrimSpace(depositID)
	if depositID == "" {
		return entities.SavingsDeposit{}, ErrInvalidDepositID
	}

	current, err := u.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return entities.SavingsDeposit{}, err
	}
	if current.ID == "" {
		return entities.SavingsDeposit{}, ErrSavingsDepositNotFound
	}

	if in.AmountCents == 0 {
		return entities.SavingsDeposit{}, ErrZeroDepositAmount
	}
	current.AmountCents = in.AmountCents
	if in.Date != "" {
		date, err := parseDate(in.Date)
		if err != nil {
			return entities.SavingsDeposit{}, err
		}
		current.Date = date
	}
	current.Note = strings.TrimSpace(in.Note)

	return u.depositRepo.Update(ctx, current)
}

func (u *BudgetUseCase) DeleteDeposit(ctx context.Context, depositID string) error {
	depositID = strings.TrimSpace(depositID)
	if depositID == "" {
		return ErrInvalidDepositID
	}

	current, err := u.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrSavingsDepositNotFound
	}
	return u.depositRepo.Delete(ctx, depositID)
}

// SavingsGoals measures each room's savings balance against its planned
// budget.
func (u *BudgetUseCase) SavingsGoals(ctx context.Context, workspaceID string) ([]budgeting.SavingsGoal, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}

	rooms, err := u.roomRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	budgets, err := u.budgetRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	deposits, err := u.depositRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	return budgeting.Goals(rooms, budgets, deposits), nil
}

func (u *BudgetUseCase) loadItemsWithPrices(ctx context.Context, workspaceID string) ([]entities.ItemWithPrices, error) {
	items, err := u.itemRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ItemWithPrices, 0, len(items))
	for _, it := range items {
		prices, err := u.priceRepo.ListByItemID(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.ItemWithPrices{Item: it, Prices: prices})
	}
	return out, nil
}
