// Package budgeting turns a workspace's rooms, budgets, items and savings
// deposits into per-room summary rows, workspace totals and alert flags.
// Like pricing, it is pure arithmetic over fetched snapshots.
package budgeting

import (
	"math"
	"time"

	"moveplanner/internal/domain/entities"
)

// nearLimitRatio is the spent/planned fraction above which a room is
// flagged as approaching its budget.
const nearLimitRatio = 0.8

// RoomSummary is one row of the budget overview.

type RoomSummary struct {
	BudgetID            string                       `json:"budget_id"`
	RoomID              string                       `json:"room_id"`
	RoomName            string                       `json:"room_name"`
	PlannedCents        int64                        `json:"planned_cents"`
	SpentCents          int64                        `json:"spent_cents"`
	EstimatedCents      int64                        `json:"estimated_cents"`
	ActualCents         int64                        `json:"actual_cents"`
	TargetDate          *time.Time                   `json:"target_date,omitempty"`
	SavingsTargetSource entities.SavingsTargetSource `json:"savings_target_source"`
}

// OverBudget reports whether the room has spent past its plan.
func (s RoomSummary) OverBudget() bool {
	return s.SpentCents > s.PlannedCents
}

// NearLimit reports whether the room is within plan but above the warning
// ratio. A zero planned budget never flags: the ratio is defined as 0
// there, not NaN.
func (s RoomSummary) NearLimit() bool {
	if s.PlannedCents <= 0 || s.OverBudget() {
		return false
	}
	return float64(s.SpentCents)/float64(s.PlannedCents) > nearLimitRatio
}

// OverageCents is how far past plan the room is, 0 when within plan.
func (s RoomSummary) OverageCents() int64 {
	if !s.OverBudget() {
		return 0
	}
	return s.SpentCents - s.PlannedCents
}

// Overview is the workspace-level rollup.

type Overview struct {
	Rooms               []RoomSummary `json:"rooms"`
	TotalPlannedCents   int64         `json:"total_planned_cents"`
	TotalSpentCents     int64         `json:"total_spent_cents"`
	TotalEstimatedCents int64         `json:"total_estimated_cents"`
	TotalActualCents    int64         `json:"total_actual_cents"`
	OverBudgetRooms     []string      `json:"over_budget_room_ids"`
	NearLimitRooms      []string      `json:"near_limit_room_ids"`
}

// Aggregate produces one summary row per budget record, in the order the
// budgets were supplied.
//
// Per item the latest price record stands in for the current price:
//   - estimated accumulates quantity x estimated unit price, purchased or not
//   - purchased items with a recorded actual price count that amount toward
//     both actual and spent
//   - everything else falls back to the estimate for spent, so spend never
//     lags behind just because a receipt was not filed yet
//
// Items without any price record contribute nothing.
func Aggregate(budgets []entities.RoomBudget, rooms []entities.Room, items []entities.ItemWithPrices) Overview {
	roomNames := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = r.Name
	}

	itemsByRoom := make(map[string][]entities.ItemWithPrices, len(items))
	for _, it := range items {
		if it.RoomID == "" {
			continue
		}
		itemsByRoom[it.RoomID] = append(itemsByRoom[it.RoomID], it)
	}

	ov := Overview{Rooms: make([]RoomSummary, 0, len(budgets))}
	for _, b := range budgets {
		row := RoomSummary{
			BudgetID:            b.ID,
			RoomID:              b.RoomID,
			RoomName:            roomNames[b.RoomID],
			PlannedCents:        b.PlannedCents,
			TargetDate:          b.TargetDate,
			SavingsTargetSource: b.SavingsTargetSource,
		}

		for _, it := range itemsByRoom[b.RoomID] {
			price := it.LatestPrice()
			if price == nil {
				continue
			}
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}

			row.EstimatedCents += qty * price.EstUnitCents
			if it.Purchased && price.ActualUnitCents != nil {
				actual := qty * *price.ActualUnitCents
				row.ActualCents += actual
				row.SpentCents += actual
			} else {
				row.SpentCents += qty * price.EstUnitCents
			}
		}

		ov.TotalPlannedCents += row.PlannedCents
		ov.TotalSpentCents += row.SpentCents
		ov.TotalEstimatedCents += row.EstimatedCents
		ov.TotalActualCents += row.ActualCents
		if row.OverBudget() {
			ov.OverBudgetRooms = append(ov.OverBudgetRooms, row.RoomID)
		}
		if row.NearLimit() {
			ov.NearLimitRooms = append(ov.NearLimitRooms, row.RoomID)
		}
		ov.Rooms = append(ov.Rooms, row)
	}
	return ov
}

// DaysUntilMove counts whole days from now until the move-in date, never
// negative. A nil date yields 0.
func DaysUntilMove(moveInDate *time.Time, now time.Time) int {
	if moveInDate == nil {
		return 0
	}
	days := int(math.Ceil(moveInDate.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
