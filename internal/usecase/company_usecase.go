package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/domain/pricing"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrInvalidCompanyID      = errors.New("invalid company id")
	ErrInvalidCompanyName    = errors.New("invalid company name")
	ErrInvalidTaxOverride    = errors.New("tax override must be a fraction between 0 and 1")
	ErrInvalidQuoteSubtotal  = errors.New("quote subtotal must be a non-negative cents amount")
	ErrInvalidQuoteOtherFees = errors.New("quote other fees must be a non-negative cents amount")
)

// CompanyInput is the editable attribute set of a company.

type CompanyInput struct {
	Name           string
	Website        string
	FeesTaxable    bool
	TaxOverridePct *float64
}

// ICompanyUseCase exposes vendor management plus the order-quote
// calculation (delivery fee, tax, grand total) for a company.

type ICompanyUseCase interface {
	Create(ctx context.Context, workspaceID string, in CompanyInput) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Company, error)
	Update(ctx context.Context, id string, in CompanyInput) (entities.Company, error)
	Delete(ctx context.Context, id string) error
	Quote(ctx context.Context, companyID string, subtotalCents, otherFeesCents int64) (pricing.QuoteBreakdown, error)
}

type CompanyUseCase struct {
	companyRepo   interfaces.ICompanyRepository
	ruleRepo      interfaces.IFeeRuleRepository
	workspaceRepo interfaces.IWorkspaceRepository
	activityLog   interfaces.IActivityLogRepository
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(companyRepo interfaces.ICompanyRepository, ruleRepo interfaces.IFeeRuleRepository, workspaceRepo interfaces.IWorkspaceRepository, activityLog interfaces.IActivityLogRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, ruleRepo: ruleRepo, workspaceRepo: workspaceRepo, activityLog: activityLog}
}

func (u *CompanyUseCase) Create(ctx context.Context, workspaceID string, in CompanyInput) (entities.Company, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Company{}, ErrInvalidWorkspaceID
	}
	if err := validateCompanyInput(in); err != nil {
		return entities.Company{}, err
	}

	ws, err := u.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return entities.Company{}, err
	}
	if ws.ID == "" {
		return entities.Company{}, ErrWorkspaceNotFound
	}

	company := entities.Company{
		ID:             uuid.NewString(),
		WorkspaceID:    workspaceID,
		Name:           strings.TrimSpace(in.Name),
		Website:        strings.TrimSpace(in.Website),
		FeesTaxable:    in.FeesTaxable,
		TaxOverridePct: in.TaxOverridePct,
	}
	created, err := u.companyRepo.Create(ctx, company)
	if err != nil {
		return entities.Company{}, err
	}

	recordActivity(ctx, u.activityLog, workspaceID, "", "company.created", "company", created.ID, map[string]interface{}{
		"name": created.Name,
	})
	return created, nil
}

func (u *CompanyUseCase) GetByID(ctx context.Context, id string) (entities.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}

	c, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if c.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return c, nil
}

func (u *CompanyUseCase) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Company, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.companyRepo.ListByWorkspaceID(ctx, workspaceID)
}

func (u *CompanyUseCase) Update(ctx context.Context, id string, in CompanyInput) (entities.Company, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if err := validateCompanyInput(in); err != nil {
		return entities.Company{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Website = strings.TrimSpace(in.Website)
	current.FeesTaxable = in.FeesTaxable
	current.TaxOverridePct = in.TaxOverridePct
	return u.companyRepo.Update(ctx, current)
}

// Delete removes a company and cascades to its fee rules.
func (u *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.ruleRepo.DeleteByCompanyID(ctx, company.ID); err != nil {
		return err
	}
	if err := u.companyRepo.Delete(ctx, company.ID); err != nil {
		return err
	}

	recordActivity(ctx, u.activityLog, company.WorkspaceID, "", "company.deleted", "company", company.ID, map[string]interface{}{
		"name": company.Name,
	})
	return nil
}

// Quote prices an order of subtotalCents against the company's active fee
// rule and tax settings. No active rule means a zero delivery fee, not
// an error.
func (u *CompanyUseCase) Quote(ctx context.Context, companyID string, subtotalCents, otherFeesCents int64) (pricing.QuoteBreakdown, error) {
	if subtotalCents < 0 {
		return pricing.QuoteBreakdown{}, ErrInvalidQuoteSubtotal
	}
	if otherFeesCents < 0 {
		return pricing.QuoteBreakdown{}, ErrInvalidQuoteOtherFees
	}

	company, err := u.GetByID(ctx, companyID)
	if err != nil {
		return pricing.QuoteBreakdown{}, err
	}

	ws, err := u.workspaceRepo.GetByID(ctx, company.WorkspaceID)
	if err != nil {
		return pricing.QuoteBreakdown{}, err
	}
	if ws.ID == "" {
		return pricing.QuoteBreakdown{}, ErrWorkspaceNotFound
	}

	rules, err := u.ruleRepo.ListByCompanyID(ctx, company.ID)
	if err != nil {
		return pricing.QuoteBreakdown{}, err
	}
	var active *entities.FeeRule
	for i := range rules {
		if rules[i].Active {
			active = &rules[i]
			break
		}
	}

	quote, err := pricing.Quote(subtotalCents, otherFeesCents, company, ws, active)
	if err != nil {
		return pricing.QuoteBreakdown{}, err
	}
	log.Printf("[fees][usecase] quote company_id=%s subtotal=%d delivery=%d tax=%d total=%d", company.ID, quote.SubtotalCents, quote.DeliveryFeeCents, quote.TaxCents, quote.TotalCents)
	return quote, nil
}

func validateCompanyInput(in CompanyInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidCompanyName
	}
	if in.TaxOverridePct != nil && (*in.TaxOverridePct < 0 || *in.TaxOverridePct > 1) {
		return ErrInvalidTaxOverride
	}
	return nil
}
