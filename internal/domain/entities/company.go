package entities

import "time"

// FeeRuleType discriminates how a company charges its delivery/service fee.

type FeeRuleType string

const (
	FeeRuleTypeFlat    FeeRuleType = "flat"
	FeeRuleTypePercent FeeRuleType = "percent"
	FeeRuleTypeTiered  FeeRuleType = "tiered"
)

// Company is a vendor/provider the couple buys from.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id
//
// Tax notes:
//   - FeesTaxable controls whether delivery + other fees enter the tax base.
//   - TaxOverridePct, when set, replaces the workspace default rate. It is a
//     decimal fraction, same convention as Workspace.SalesTaxRatePct.

type Company struct {
	ID             string   `json:"id"`
	WorkspaceID    string   `json:"workspace_id"`
	Name           string   `json:"name"`
	Website        string   `json:"website,omitempty"`
	FeesTaxable    bool     `json:"fees_taxable"`
	TaxOverridePct *float64 `json:"tax_override_pct,omitempty"`
}

// FeeTier is one (threshold, fee) bracket of a tiered rule. ThresholdCents
// is the inclusive upper bound of the subtotal range the tier covers.

type FeeTier struct {
	ThresholdCents int64 `json:"threshold_cents"`
	FeeCents       int64 `json:"fee_cents"`
}

// FeeRule is a versioned fee policy owned by exactly one company. At most
// one rule per company is active at any time; activation of a new rule
// deactivates the rest explicitly before insert.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//   - Tiers are embedded as a list attribute on the rule row; they are
//     owned children and are always read together with their rule.

type FeeRule struct {
	ID          string      `json:"id"`
	CompanyID   string      `json:"company_id"`
	Type        FeeRuleType `json:"type"`
	FlatCents   *int64      `json:"flat_cents,omitempty"`
	PercentRate *float64    `json:"percent_rate,omitempty"`
	Version     int         `json:"version"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	Tiers       []FeeTier   `json:"tiers,omitempty"`
}
