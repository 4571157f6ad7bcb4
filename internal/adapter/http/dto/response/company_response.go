package response

import (
	"time"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/domain/pricing"
)

type CompanyResponse struct {
	ID             string   `json:"id"`
	WorkspaceID    string   `json:"workspace_id"`
	Name           string   `json:"name"`
	Website        string   `json:"website,omitempty"`
	FeesTaxable    bool     `json:"fees_taxable"`
	TaxOverridePct *float64 `json:"tax_override_pct,omitempty"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID,
		WorkspaceID:    c.WorkspaceID,
		Name:           c.Name,
		Website:        c.Website,
		FeesTaxable:    c.FeesTaxable,
		TaxOverridePct: c.TaxOverridePct,
	}
}

func FromCompanies(companies []entities.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, FromCompany(c))
	}
	return out
}

type FeeTierResponse struct {
	ThresholdCents int64 `json:"threshold_cents"`
	FeeCents       int64 `json:"fee_cents"`
}

type FeeRuleResponse struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"company_id"`
	Type        string            `json:"type"`
	FlatCents   *int64            `json:"flat_cents,omitempty"`
	PercentRate *float64          `json:"percent_rate,omitempty"`
	Version     int               `json:"version"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
	Tiers       []FeeTierResponse `json:"tiers,omitempty"`
}

func FromFeeRule(r entities.FeeRule) FeeRuleResponse {
	var tiers []FeeTierResponse
	for _, t := range r.Tiers {
		tiers = append(tiers, FeeTierResponse{ThresholdCents: t.ThresholdCents, FeeCents: t.FeeCents})
	}
	return FeeRuleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Type:        string(r.Type),
		FlatCents:   r.FlatCents,
		PercentRate: r.PercentRate,
		Version:     r.Version,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		Tiers:       tiers,
	}
}

func FromFeeRules(rules []entities.FeeRule) []FeeRuleResponse {
	out := make([]FeeRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromFeeRule(r))
	}
	return out
}

// QuoteResponse is the cost breakdown for an order, all amounts in cents.

type QuoteResponse struct {
	SubtotalCents    int64   `json:"subtotal_cents"`
	DeliveryFeeCents int64   `json:"delivery_fee_cents"`
	OtherFeesCents   int64   `json:"other_fees_cents"`
	TaxCents         int64   `json:"tax_cents"`
	TotalCents       int64   `json:"total_cents"`
	TaxRate          float64 `json:"tax_rate"`
}

func FromQuote(q pricing.QuoteBreakdown) QuoteResponse {
	return QuoteResponse{
		SubtotalCents:    q.SubtotalCents,
		DeliveryFeeCents: q.DeliveryFeeCents,
		OtherFeesCents:   q.OtherFeesCents,
		TaxCents:         q.TaxCents,
		TotalCents:       q.TotalCents,
		TaxRate:          q.TaxRate,
	}
}
