package request

import (
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase"
)

// UpdateBudgetRequest carries partial room-budget settings; an empty
// target_date clears the date.

type UpdateBudgetRequest struct {
	PlannedCents        *int64  `json:"planned_cents"`
	TargetDate          *string `json:"target_date"`
	SavingsTargetSource *string `json:"savings_target_source"`
}

func (r UpdateBudgetRequest) ToUpdate() usecase.RoomBudgetUpdate {
	upd := usecase.RoomBudgetUpdate{
		PlannedCents: r.PlannedCents,
		TargetDate:   r.TargetDate,
	}
	if r.SavingsTargetSource != nil {
		src := entities.SavingsTargetSource(*r.SavingsTargetSource)
		upd.SavingsTargetSource = &src
	}
	return upd
}

// DepositRequest is a savings ledger entry; amount_cents is signed, a
// negative amount is a withdrawal.

type DepositRequest struct {
	RoomID      string `json:"room_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	AmountCents int64  `json:"amount_cents"`
	Note        string `json:"note"`
}

func (r DepositRequest) ToInput() usecase.NewDepositInput {
	return usecase.NewDepositInput{
		RoomID:      r.RoomID,
		Date:        r.Date,
		AmountCents: r.AmountCents,
		Note:        r.Note,
	}
}
