package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFeeRuleNotFound    = errors.New("fee rule not found")
	ErrInvalidFeeRuleID   = errors.New("invalid fee rule id")
	ErrInvalidFeeRuleType = errors.New("invalid fee rule type")
	ErrInvalidFlatFee     = errors.New("flat fee must be a non-negative cents amount")
	ErrInvalidPercentRate = errors.New("percent rate must be a fraction between 0 and 1")
	ErrMissingTiers       = errors.New("tiered rule needs at least one tier")
	ErrInvalidTier        = errors.New("tier threshold and fee must be non-negative cents amounts")
	ErrDuplicateTierBound = errors.New("tier thresholds must be unique")
)

// NewFeeRuleInput carries the policy a member configures for a company.
// Exactly the fields for the chosen type are read; the rest are ignored.

type NewFeeRuleInput struct {
	Type        entities.FeeRuleType
	FlatCents   *int64
	PercentRate *float64
	Tiers       []entities.FeeTier
}

// IFeeRuleUseCase exposes fee-policy management for a company.
//
// Invariant: at most one active rule per company. Creating a rule first
// deactivates every currently active rule and only then inserts the new
// one with the next version number.

type IFeeRuleUseCase interface {
	CreateRule(ctx context.Context, companyID string, in NewFeeRuleInput) (entities.FeeRule, error)
	ListRules(ctx context.Context, companyID string, activeOnly bool) ([]entities.FeeRule, error)
	ActiveRule(ctx context.Context, companyID string) (*entities.FeeRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
}

type FeeRuleUseCase struct {
	companyRepo interfaces.ICompanyRepository
	ruleRepo    interfaces.IFeeRuleRepository
	activityLog interfaces.IActivityLogRepository
}

var _ IFeeRuleUseCase = (*FeeRuleUseCase)(nil)

func NewFeeRuleUseCase(companyRepo interfaces.ICompanyRepository, ruleRepo interfaces.IFeeRuleRepository, activityLog interfaces.IActivityLogRepository) *FeeRuleUseCase {
	return &FeeRuleUseCase{companyRepo: companyRepo, ruleRepo: ruleRepo, activityLog: activityLog}
}

func (u *FeeRuleUseCase) CreateRule(ctx context.Context, companyID string, in NewFeeRuleInput) (entities.FeeRule, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.FeeRule{}, ErrInvalidCompanyID
	}
	if err := validateFeeRuleInput(in); err != nil {
		return entities.FeeRule{}, err
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return entities.FeeRule{}, err
	}
	if company.ID == "" {
		return entities.FeeRule{}, ErrCompanyNotFound
	}

	existing, err := u.ruleRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return entities.FeeRule{}, err
	}

	// Deactivate-before-insert keeps the one-active-rule invariant without
	// a store-side constraint.
	maxVersion := 0
	for _, r := range existing {
		if r.Version > maxVersion {
			maxVersion = r.Version
		}
		if !r.Active {
			continue
		}
		if _, err := u.ruleRepo.SetActive(ctx, r.ID, false); err != nil {
			return entities.FeeRule{}, err
		}
	}

	rule := entities.FeeRule{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Type:      in.Type,
		Version:   maxVersion + 1,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	switch in.Type {
	case entities.FeeRuleTypeFlat:
		rule.FlatCents = in.FlatCents
	case entities.FeeRuleTypePercent:
		rule.PercentRate = in.PercentRate
	case entities.FeeRuleTypeTiered:
		rule.Tiers = in.Tiers
	}

	created, err := u.ruleRepo.Create(ctx, rule)
	if err != nil {
		return entities.FeeRule{}, err
	}
	log.Printf("[fees][usecase] rule created company_id=%s rule_id=%s type=%s version=%d", companyID, created.ID, created.Type, created.Version)

	recordActivity(ctx, u.activityLog, company.WorkspaceID, "", "fee_rule.created", "fee_rule", created.ID, map[string]interface{}{
		"company_id": companyID,
		"type":       string(created.Type),
		"version":    created.Version,
	})
	return created, nil
}

func (u *FeeRuleUseCase) ListRules(ctx context.Context, companyID string, activeOnly bool) ([]entities.FeeRule, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	rules, err := u.ruleRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return rules, nil
	}

	active := make([]entities.FeeRule, 0, 1)
	for _, r := range rules {
		if r.Active {
			active = append(active, r)
		}
	}
	return active, nil
}

// ActiveRule returns the company's current policy, or nil when none is
// configured. Callers treat nil as "fee is zero", they do not error.
func (u *FeeRuleUseCase) ActiveRule(ctx context.Context, companyID string) (*entities.FeeRule, error) {
	rules, err := u.ListRules(ctx, companyID, true)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return &rules[0], nil
}

func (u *FeeRuleUseCase) DeleteRule(ctx context.Context, ruleID string) error {
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return ErrInvalidFeeRuleID
	}

	rule, err := u.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if rule.ID == "" {
		return ErrFeeRuleNotFound
	}
	return u.ruleRepo.Delete(ctx, ruleID)
}

func validateFeeRuleInput(in NewFeeRuleInput) error {
	switch in.Type {
	case entities.FeeRuleTypeFlat:
		if in.FlatCents != nil && *in.FlatCents < 0 {
			return ErrInvalidFlatFee
		}
	case entities.FeeRuleTypePercent:
		if in.PercentRate == nil || *in.PercentRate < 0 || *in.PercentRate > 1 {
			return ErrInvalidPercentRate
		}
	case entities.FeeRuleTypeTiered:
		if len(in.Tiers) == 0 {
			return ErrMissingTiers
		}
		seen := make(map[int64]bool, len(in.Tiers))
		for _, t := range in.Tiers {
			if t.ThresholdCents < 0 || t.FeeCents < 0 {
				return ErrInvalidTier
			}
			if seen[t.ThresholdCents] {
				return ErrDuplicateTierBound
			}
			seen[t.ThresholdCents] = true
		}
	default:
		return ErrInvalidFeeRuleType
	}
	return nil
}
