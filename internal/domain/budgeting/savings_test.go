package budgeting

import (
	"testing"

	"moveplanner/internal/domain/entities"
)

func TestCurrentSavings(t *testing.T) {
	deposits := []entities.SavingsDeposit{
		{RoomID: "r1", AmountCents: 10000},
		{RoomID: "r1", AmountCents: -2000}, // withdrawal
		{RoomID: "r1", AmountCents: 5000},
		{RoomID: "r2", AmountCents: 999},
	}

	if got := CurrentSavings(deposits, "r1"); got != 13000 {
		t.Fatalf("got %d, want 13000", got)
	}
	if got := CurrentSavings(deposits, "r3"); got != 0 {
		t.Fatalf("got %d, want 0 for room without deposits", got)
	}
}

func TestGoal(t *testing.T) {
	t.Run("partial progress", func(t *testing.T) {
		g := Goal("r1", "Kitchen", 20000, 13000)
		if g.PercentComplete != 65 {
			t.Fatalf("percent = %v, want 65", g.PercentComplete)
		}
		if g.Met {
			t.Fatal("goal must not be met at 65%")
		}
		if g.RemainingCents != 7000 {
			t.Fatalf("remaining = %d, want 7000", g.RemainingCents)
		}
	})

	t.Run("met and exceeded", func(t *testing.T) {
		g := Goal("r1", "Kitchen", 20000, 25000)
		if !g.Met {
			t.Fatal("expected goal met")
		}
		if g.RemainingCents != 0 {
			t.Fatalf("remaining = %d, want 0", g.RemainingCents)
		}
	})

	t.Run("zero target never met", func(t *testing.T) {
		g := Goal("r1", "Kitchen", 0, 5000)
		if g.Met {
			t.Fatal("a zero target cannot be met")
		}
		if g.PercentComplete != 0 {
			t.Fatalf("percent = %v, want guarded 0", g.PercentComplete)
		}
	})
}

func TestGoals(t *testing.T) {
	rooms := []entities.Room{
		{ID: "r1", Name: "Kitchen"},
		{ID: "r2", Name: "Den"},
	}
	budgets := []entities.RoomBudget{{RoomID: "r1", PlannedCents: 20000}}
	deposits := []entities.SavingsDeposit{
		{RoomID: "r1", AmountCents: 10000},
		{RoomID: "r1", AmountCents: -2000},
		{RoomID: "r1", AmountCents: 5000},
	}

	goals := Goals(rooms, budgets, deposits)
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].CurrentCents != 13000 || goals[0].TargetCents != 20000 {
		t.Fatalf("unexpected goal: %+v", goals[0])
	}
	if goals[1].TargetCents != 0 || goals[1].CurrentCents != 0 {
		t.Fatalf("room without budget should have zero goal: %+v", goals[1])
	}
}
