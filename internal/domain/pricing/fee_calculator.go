// Package pricing implements the fee-calculation arithmetic for vendor
// companies: flat / percentage / tiered delivery fees, tax on top, and the
// resulting order total. Everything here is a pure function over already
// fetched data; no repository or clock is touched.
package pricing

import (
	"errors"

	"moveplanner/internal/domain/entities"
	"moveplanner/pkg/money"
)

var (
	ErrNegativeSubtotal   = errors.New("subtotal must not be negative")
	ErrNegativeOtherFees  = errors.New("other fees must not be negative")
	ErrInvalidPercentRate = errors.New("percent rate must be a fraction between 0 and 1")
	ErrInvalidTaxRate     = errors.New("tax rate must be a fraction between 0 and 1")
)

// DeliveryFee computes the delivery fee in cents for an order subtotal
// under a company's fee rule.
//
// Degradation is deliberate and mirrors the product behavior: a nil rule,
// an inactive rule, or a tiered rule with no tiers all yield a zero fee
// rather than an error. Malformed inputs (negative subtotal, rate outside
// [0,1]) are contract violations and fail loud.
func DeliveryFee(subtotalCents int64, rule *entities.FeeRule) (int64, error) {
	if subtotalCents < 0 {
		return 0, ErrNegativeSubtotal
	}
	if rule == nil || !rule.Active {
		return 0, nil
	}

	switch rule.Type {
	case entities.FeeRuleTypeFlat:
		if rule.FlatCents == nil {
			return 0, nil
		}
		return *rule.FlatCents, nil
	case entities.FeeRuleTypePercent:
		if rule.PercentRate == nil {
			return 0, nil
		}
		rate := *rule.PercentRate
		if rate < 0 || rate > 1 {
			return 0, ErrInvalidPercentRate
		}
		return money.ApplyRate(subtotalCents, rate), nil
	case entities.FeeRuleTypeTiered:
		return ResolveTier(subtotalCents, rule.Tiers), nil
	default:
		return 0, nil
	}
}

// ResolveTier selects the applicable bracket for a subtotal: the tier with
// the smallest threshold such that subtotal <= threshold.
//
// When the subtotal exceeds every configured threshold the fee is 0; tiers
// have no implicit catch-all above the highest bracket. That reads like a
// gap but it is the observed product rule and is kept.
//
// Duplicate thresholds are rejected at rule creation; if they show up
// anyway, the lowest fee wins so the function stays deterministic.
func ResolveTier(subtotalCents int64, tiers []entities.FeeTier) int64 {
	found := false
	var best entities.FeeTier
	for _, t := range tiers {
		if subtotalCents > t.ThresholdCents {
			continue
		}
		switch {
		case !found,
			t.ThresholdCents < best.ThresholdCents,
			t.ThresholdCents == best.ThresholdCents && t.FeeCents < best.FeeCents:
			best = t
			found = true
		}
	}
	if !found {
		return 0
	}
	return best.FeeCents
}

// TaxRate resolves the effective rate for a company inside a workspace:
// company override when present, otherwise the workspace default,
// otherwise zero.
func TaxRate(company entities.Company, workspace entities.Workspace) float64 {
	if company.TaxOverridePct != nil {
		return *company.TaxOverridePct
	}
	return workspace.SalesTaxRatePct
}

// Tax computes the sales tax in cents. Fees enter the taxable base only
// when the company marks its fees as taxable.
func Tax(subtotalCents, deliveryFeeCents, otherFeesCents int64, feesTaxable bool, taxRate float64) (int64, error) {
	if subtotalCents < 0 {
		return 0, ErrNegativeSubtotal
	}
	if deliveryFeeCents < 0 || otherFeesCents < 0 {
		return 0, ErrNegativeOtherFees
	}
	if taxRate < 0 || taxRate > 1 {
		return 0, ErrInvalidTaxRate
	}

	taxableBase := subtotalCents
	if feesTaxable {
		taxableBase += deliveryFeeCents + otherFeesCents
	}
	return money.ApplyRate(taxableBase, taxRate), nil
}

// QuoteBreakdown is the full cost picture for an order placed with a
// company: subtotal, fees, tax and grand total, all in cents.

type QuoteBreakdown struct {
	SubtotalCents    int64
	DeliveryFeeCents int64
	OtherFeesCents   int64
	TaxCents         int64
	TotalCents       int64
	TaxRate          float64
}

// Quote combines DeliveryFee and Tax into the grand total for an order.
// rule may be nil (no policy configured); the quote then carries only
// subtotal, other fees and tax.
func Quote(subtotalCents, otherFeesCents int64, company entities.Company, workspace entities.Workspace, rule *entities.FeeRule) (QuoteBreakdown, error) {
	if otherFeesCents < 0 {
		return QuoteBreakdown{}, ErrNegativeOtherFees
	}

	deliveryFee, err := DeliveryFee(subtotalCents, rule)
	if err != nil {
		return QuoteBreakdown{}, err
	}

	rate := TaxRate(company, workspace)
	tax, err := Tax(subtotalCents, deliveryFee, otherFeesCents, company.FeesTaxable, rate)
	if err != nil {
		return QuoteBreakdown{}, err
	}

	return QuoteBreakdown{
		SubtotalCents:    subtotalCents,
		DeliveryFeeCents: deliveryFee,
		OtherFeesCents:   otherFeesCents,
		TaxCents:         tax,
		TotalCents:       subtotalCents + deliveryFee + otherFeesCents + tax,
		TaxRate:          rate,
	}, nil
}
