package response

import (
	"moveplanner/internal/domain/budgeting"
	"moveplanner/internal/domain/entities"
)

type RoomBudgetResponse struct {
	ID                  string  `json:"id"`
	WorkspaceID         string  `json:"workspace_id"`
	RoomID              string  `json:"room_id"`
	PlannedCents        int64   `json:"planned_cents"`
	TargetDate          *string `json:"target_date,omitempty"`
	SavingsTargetSource string  `json:"savings_target_source"`
}

func FromRoomBudget(b entities.RoomBudget) RoomBudgetResponse {
	return RoomBudgetResponse{
		ID:                  b.ID,
		WorkspaceID:         b.WorkspaceID,
		RoomID:              b.RoomID,
		PlannedCents:        b.PlannedCents,
		TargetDate:          formatDatePtr(b.TargetDate),
		SavingsTargetSource: string(b.SavingsTargetSource),
	}
}

func FromRoomBudgets(budgets []entities.RoomBudget) []RoomBudgetResponse {
	out := make([]RoomBudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromRoomBudget(b))
	}
	return out
}

// RoomSummaryResponse is one row of the budget overview with the derived
// flags serialized alongside the raw figures.

type RoomSummaryResponse struct {
	BudgetID            string  `json:"budget_id"`
	RoomID              string  `json:"room_id"`
	RoomName            string  `json:"room_name"`
	PlannedCents        int64   `json:"planned_cents"`
	SpentCents          int64   `json:"spent_cents"`
	EstimatedCents      int64   `json:"estimated_cents"`
	ActualCents         int64   `json:"actual_cents"`
	TargetDate          *string `json:"target_date,omitempty"`
	SavingsTargetSource string  `json:"savings_target_source"`
	OverBudget          bool    `json:"over_budget"`
	NearLimit           bool    `json:"near_limit"`
	OverageCents        int64   `json:"overage_cents"`
}

type OverviewResponse struct {
	Rooms               []RoomSummaryResponse `json:"rooms"`
	TotalPlannedCents   int64                 `json:"total_planned_cents"`
	TotalSpentCents     int64                 `json:"total_spent_cents"`
	TotalEstimatedCents int64                 `json:"total_estimated_cents"`
	TotalActualCents    int64                 `json:"total_actual_cents"`
	OverBudgetRooms     []string              `json:"over_budget_room_ids"`
	NearLimitRooms      []string              `json:"near_limit_room_ids"`
}

func FromOverview(o budgeting.Overview) OverviewResponse {
	rooms := make([]RoomSummaryResponse, 0, len(o.Rooms))
	for _, r := range o.Rooms {
		rooms = append(rooms, RoomSummaryResponse{
			BudgetID:            r.BudgetID,
			RoomID:              r.RoomID,
			RoomName:            r.RoomName,
			PlannedCents:        r.PlannedCents,
			SpentCents:          r.SpentCents,
			EstimatedCents:      r.EstimatedCents,
			ActualCents:         r.ActualCents,
			TargetDate:          formatDatePtr(r.TargetDate),
			SavingsTargetSource: string(r.SavingsTargetSource),
			OverBudget:          r.OverBudget(),
			NearLimit:           r.NearLimit(),
			OverageCents:        r.OverageCents(),
		})
	}
	return OverviewResponse{
		Rooms:               rooms,
		TotalPlannedCents:   o.TotalPlannedCents,
		TotalSpentCents:     o.TotalSpentCents,
		TotalEstimatedCents: o.TotalEstimatedCents,
		TotalActualCents:    o.TotalActualCents,
		OverBudgetRooms:     o.OverBudgetRooms,
		NearLimitRooms:      o.NearLimitRooms,
	}
}

type SavingsGoalResponse struct {
	RoomID          string  `json:"room_id"`
	RoomName        string  `json:"room_name"`
	TargetCents     int64   `json:"target_cents"`
	CurrentCents    int64   `json:"current_cents"`
	RemainingCents  int64   `json:"remaining_cents"`
	PercentComplete float64 `json:"percent_complete"`
	Met             bool    `json:"met"`
}

func FromSavingsGoals(goals []budgeting.SavingsGoal) []SavingsGoalResponse {
	out := make([]SavingsGoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, SavingsGoalResponse{
			RoomID:          g.RoomID,
			RoomName:        g.RoomName,
			TargetCents:     g.TargetCents,
			CurrentCents:    g.CurrentCents,
			RemainingCents:  g.RemainingCents,
			PercentComplete: g.PercentComplete,
			Met:             g.Met,
		})
	}
	return out
}

type DepositResponse struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	RoomID      string `json:"room_id"`
	Date        string `json:"date"`
	AmountCents int64  `json:"amount_cents"`
	Note        string `json:"note,omitempty"`
}

func FromDeposit(d entities.SavingsDeposit) DepositResponse {
	return DepositResponse{
		ID:          d.ID,
		WorkspaceID: d.WorkspaceID,
		RoomID:      d.RoomID,
		Date:        d.Date.Format(dateLayout),
		AmountCents: d.AmountCents,
		Note:        d.Note,
	}
}

func FromDeposits(deposits []entities.SavingsDeposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, FromDeposit(d))
	}
	return out
}
