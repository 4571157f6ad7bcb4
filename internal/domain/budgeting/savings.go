package budgeting

import "moveplanner/internal/domain/entities"

// SavingsGoal pairs a room's accumulated savings against its planned
// budget, the implicit target.

type SavingsGoal struct {
	RoomID          string  `json:"room_id"`
	RoomName        string  `json:"room_name"`
	TargetCents     int64   `json:"target_cents"`
	CurrentCents    int64   `json:"current_cents"`
	RemainingCents  int64   `json:"remaining_cents"`
	PercentComplete float64 `json:"percent_complete"`
	Met             bool    `json:"met"`
}

// CurrentSavings sums the signed deposit amounts for one room; withdrawals
// net out.
func CurrentSavings(deposits []entities.SavingsDeposit, roomID string) int64 {
	var sum int64
	for _, d := range deposits {
		if d.RoomID == roomID {
			sum += d.AmountCents
		}
	}
	return sum
}

// Goal measures savings progress toward a target. A non-positive target
// yields 0% and can never be met; the division is guarded, not left to
// produce Inf.
func Goal(roomID, roomName string, targetCents, currentCents int64) SavingsGoal {
	g := SavingsGoal{
		RoomID:       roomID,
		RoomName:     roomName,
		TargetCents:  targetCents,
		CurrentCents: currentCents,
	}
	if targetCents > 0 {
		g.PercentComplete = float64(currentCents) / float64(targetCents) * 100
		g.Met = currentCents >= targetCents
	}
	if remaining := targetCents - currentCents; remaining > 0 {
		g.RemainingCents = remaining
	}
	return g
}

// Goals builds one goal per room, targeting each room's planned budget.
// Rooms without a budget record get a zero target.
func Goals(rooms []entities.Room, budgets []entities.RoomBudget, deposits []entities.SavingsDeposit) []SavingsGoal {
	plannedByRoom := make(map[string]int64, len(budgets))
	for _, b := range budgets {
		plannedByRoom[b.RoomID] = b.PlannedCents
	}

	goals := make([]SavingsGoal, 0, len(rooms))
	for _, r := range rooms {
		goals = append(goals, Goal(r.ID, r.Name, plannedByRoom[r.ID], CurrentSavings(deposits, r.ID)))
	}
	return goals
}
