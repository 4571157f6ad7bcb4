package entities

import "time"

// SavingsTargetSource selects which budget figure a savings goal is
// measured against. The UI currently always uses "planned"; the other
// values exist in the schema and are preserved.

type SavingsTargetSource string

const (
	SavingsTargetPlanned SavingsTargetSource = "planned"
	SavingsTargetEst     SavingsTargetSource = "est"
	SavingsTargetActual  SavingsTargetSource = "actual"
)

// RoomBudget is the planned budget for one (workspace, room) pair. Rooms
// without a budget record get a zero one the first time budgets are viewed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type RoomBudget struct {
	ID                  string              `json:"id"`
	WorkspaceID         string              `json:"workspace_id"`
	RoomID              string              `json:"room_id"`
	PlannedCents        int64               `json:"planned_cents"`
	TargetDate          *time.Time          `json:"target_date,omitempty"`
	SavingsTargetSource SavingsTargetSource `json:"savings_target_source"`
}

// SavingsDeposit is a signed ledger entry toward a room's savings balance.
// Positive amounts are deposits, negative ones withdrawals.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type SavingsDeposit struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	RoomID      string    `json:"room_id"`
	Date        time.Time `json:"date"`
	AmountCents int64     `json:"amount_cents"`
	Note        string    `json:"note,omitempty"`
}
