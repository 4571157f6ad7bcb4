package request

import (
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase"
)

type CompanyRequest struct {
	Name           string   `json:"name" binding:"required"`
	Website        string   `json:"website"`
	FeesTaxable    bool     `json:"fees_taxable"`
	TaxOverridePct *float64 `json:"tax_override_pct"`
}

func (r CompanyRequest) ToInput() usecase.CompanyInput {
	return usecase.CompanyInput{
		Name:           r.Name,
		Website:        r.Website,
		FeesTaxable:    r.FeesTaxable,
		TaxOverridePct: r.TaxOverridePct,
	}
}

type FeeTierRequest struct {
	ThresholdCents int64 `json:"threshold_cents"`
	FeeCents       int64 `json:"fee_cents"`
}

// FeeRuleRequest carries one fee policy. Only the fields matching the
// declared type are read; the use case validates the combination.

type FeeRuleRequest struct {
	Type        string           `json:"type" binding:"required"`
	FlatCents   *int64           `json:"flat_cents"`
	PercentRate *float64         `json:"percent_rate"`
	Tiers       []FeeTierRequest `json:"tiers"`
}

func (r FeeRuleRequest) ToInput() usecase.NewFeeRuleInput {
	tiers := make([]entities.FeeTier, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tiers = append(tiers, entities.FeeTier{
			ThresholdCents: t.ThresholdCents,
			FeeCents:       t.FeeCents,
		})
	}
	if len(tiers) == 0 {
		tiers = nil
	}
	return usecase.NewFeeRuleInput{
		Type:        entities.FeeRuleType(r.Type),
		FlatCents:   r.FlatCents,
		PercentRate: r.PercentRate,
		Tiers:       tiers,
	}
}
