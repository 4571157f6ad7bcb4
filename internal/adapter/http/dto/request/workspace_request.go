package request

import (
	"moveplanner/internal/usecase"
)

// CreateWorkspaceRequest is the onboarding payload. SalesTaxRatePct is a
// decimal fraction (0.0825 = 8.25%); date fields are YYYY-MM-DD strings.

type CreateWorkspaceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Zip             string  `json:"zip"`
	Currency        string  `json:"currency" binding:"required"`
	SalesTaxRatePct float64 `json:"sales_tax_rate_pct"`
	MoveInDate      string  `json:"move_in_date"`
	CreatedBy       string  `json:"created_by" binding:"required"`
}

func (r CreateWorkspaceRequest) ToInput() usecase.NewWorkspaceInput {
	return usecase.NewWorkspaceInput{
		Name:            r.Name,
		Zip:             r.Zip,
		Currency:        r.Currency,
		SalesTaxRatePct: r.SalesTaxRatePct,
		MoveInDate:      r.MoveInDate,
		CreatedBy:       r.CreatedBy,
	}
}

// UpdateWorkspaceRequest carries partial workspace settings; absent fields
// stay untouched, an empty move_in_date clears the date.

type UpdateWorkspaceRequest struct {
	Name            *string  `json:"name"`
	Zip             *string  `json:"zip"`
	Currency        *string  `json:"currency"`
	SalesTaxRatePct *float64 `json:"sales_tax_rate_pct"`
	MoveInDate      *string  `json:"move_in_date"`
}

func (r UpdateWorkspaceRequest) ToUpdate() usecase.WorkspaceUpdate {
	return usecase.WorkspaceUpdate{
		Name:            r.Name,
		Zip:             r.Zip,
		Currency:        r.Currency,
		SalesTaxRatePct: r.SalesTaxRatePct,
		MoveInDate:      r.MoveInDate,
	}
}

type InviteRequest struct {
	Email string `json:"email" binding:"required"`
}
