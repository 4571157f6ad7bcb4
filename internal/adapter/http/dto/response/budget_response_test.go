package response

import (
	"testing"
	"time"

	"moveplanner/internal/domain/budgeting"
	"moveplanner/internal/domain/entities"
)

func TestFromOverview(t *testing.T) {
	target := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	o := budgeting.Overview{
		Rooms: []budgeting.RoomSummary{
			{
				BudgetID:            "b-1",
				RoomID:              "room-1",
				RoomName:            "Kitchen",
				PlannedCents:        10000,
				SpentCents:          12000,
				TargetDate:          &target,
				SavingsTargetSource: entities.SavingsTargetPlanned,
			},
			{
				BudgetID:     "b-2",
				RoomID:       "room-2",
				RoomName:     "Den",
				PlannedCents: 10000,
				SpentCents:   9000,
			},
		},
		TotalPlannedCents: 20000,
		TotalSpentCents:   21000,
		OverBudgetRooms:   []string{"room-1"},
		NearLimitRooms:    []string{"room-2"},
	}

	res := FromOverview(o)
	if len(res.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(res.Rooms))
	}
	first := res.Rooms[0]
	if !first.OverBudget || first.OverageCents != 2000 {
		t.Fatalf("expected room-1 over budget by 2000, got %+v", first)
	}
	if first.TargetDate == nil || *first.TargetDate != "2026-10-01" {
		t.Fatalf("unexpected target date: %v", first.TargetDate)
	}
	second := res.Rooms[1]
	if second.OverBudget || !second.NearLimit || second.OverageCents != 0 {
		t.Fatalf("expected room-2 near limit only, got %+v", second)
	}
	if res.TotalSpentCents != 21000 {
		t.Fatalf("expected total spent 21000, got %d", res.TotalSpentCents)
	}
}

func TestFromDeposit(t *testing.T) {
	d := entities.SavingsDeposit{
		ID:          "dep-1",
		WorkspaceID: "ws-1",
		RoomID:      "room-1",
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		AmountCents: -2500,
		Note:        "moved to checking",
	}

	res := FromDeposit(d)
	if res.Date != "2026-09-15" {
		t.Fatalf("unexpected date: %s", res.Date)
	}
	if res.AmountCents != -2500 || res.Note != "moved to checking" {
		t.Fatalf("unexpected deposit: %+v", res)
	}
}
