package interfaces

import (
	"context"

	"moveplanner/internal/domain/entities"
)

// ICompanyRepository abstracts DynamoDB persistence for Company.

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Company, error)
	Update(ctx context.Context, c entities.Company) (entities.Company, error)
	Delete(ctx context.Context, id string) error
}

// IFeeRuleRepository abstracts DynamoDB persistence for FeeRule.
//
// The planner must be able to:
//   - list a company's rules (newest version first) with their tiers
//   - flip the active flag, so a new rule can deactivate its predecessors
//     before insert (the one-active-rule invariant is enforced by the use
//     case, not by the store)
//   - cascade-delete all rules when a company goes away

type IFeeRuleRepository interface {
	Create(ctx context.Context, r entities.FeeRule) (entities.FeeRule, error)
	GetByID(ctx context.Context, id string) (entities.FeeRule, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.FeeRule, error)
	SetActive(ctx context.Context, id string, active bool) (entities.FeeRule, error)
	Delete(ctx context.Context, id string) error
	DeleteByCompanyID(ctx context.Context, companyID string) error
}
