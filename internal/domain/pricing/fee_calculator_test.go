package pricing

import (
	"errors"
	"testing"

	"moveplanner/internal/domain/entities"
)

func flatRule(cents int64) *entities.FeeRule {
	return &entities.FeeRule{Type: entities.FeeRuleTypeFlat, FlatCents: &cents, Active: true}
}

func percentRule(rate float64) *entities.FeeRule {
	return &entities.FeeRule{Type: entities.FeeRuleTypePercent, PercentRate: &rate, Active: true}
}

func tieredRule(tiers ...entities.FeeTier) *entities.FeeRule {
	return &entities.FeeRule{Type: entities.FeeRuleTypeTiered, Tiers: tiers, Active: true}
}

func TestDeliveryFee_Flat(t *testing.T) {
	rule := flatRule(599)
	// Flat fee is independent of the subtotal.
	for _, subtotal := range []int64{0, 1, 5000, 1_000_000} {
		got, err := DeliveryFee(subtotal, rule)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 599 {
			t.Fatalf("DeliveryFee(%d) = %d, want 599", subtotal, got)
		}
	}

	t.Run("unset flat cents", func(t *testing.T) {
		got, err := DeliveryFee(5000, &entities.FeeRule{Type: entities.FeeRuleTypeFlat, Active: true})
		if err != nil || got != 0 {
			t.Fatalf("expected 0/nil, got %d/%v", got, err)
		}
	})
}

func TestDeliveryFee_Percent(t *testing.T) {
	got, err := DeliveryFee(50000, percentRule(0.05))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2500 {
		t.Fatalf("5%% of $500.00 = %d cents, want 2500", got)
	}

	t.Run("rounds half away from zero", func(t *testing.T) {
		// 1234 * 0.005 = 6.17 -> 6; 1300 * 0.005 = 6.5 -> 7
		if got, _ := DeliveryFee(1234, percentRule(0.005)); got != 6 {
			t.Fatalf("got %d, want 6", got)
		}
		if got, _ := DeliveryFee(1300, percentRule(0.005)); got != 7 {
			t.Fatalf("got %d, want 7", got)
		}
	})

	t.Run("rate out of range", func(t *testing.T) {
		_, err := DeliveryFee(1000, percentRule(5))
		if !errors.Is(err, ErrInvalidPercentRate) {
			t.Fatalf("expected ErrInvalidPercentRate, got %v", err)
		}
		_, err = DeliveryFee(1000, percentRule(-0.1))
		if !errors.Is(err, ErrInvalidPercentRate) {
			t.Fatalf("expected ErrInvalidPercentRate, got %v", err)
		}
	})
}

func TestDeliveryFee_Tiered(t *testing.T) {
	rule := tieredRule(
		entities.FeeTier{ThresholdCents: 5000, FeeCents: 599},
		entities.FeeTier{ThresholdCents: 10000, FeeCents: 799},
	)

	cases := []struct {
		subtotal int64
		want     int64
	}{
		{0, 599},
		{5000, 599},   // inclusive upper bound
		{5001, 799},   // falls through to the next bracket
		{7500, 799},
		{10000, 799},
		{12000, 0},    // above every threshold: no catch-all
	}
	for _, c := range cases {
		got, err := DeliveryFee(c.subtotal, rule)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Fatalf("DeliveryFee(%d) = %d, want %d", c.subtotal, got, c.want)
		}
	}

	t.Run("no tiers", func(t *testing.T) {
		got, err := DeliveryFee(5000, tieredRule())
		if err != nil || got != 0 {
			t.Fatalf("expected 0/nil, got %d/%v", got, err)
		}
	})

	t.Run("duplicate thresholds pick lowest fee", func(t *testing.T) {
		got := ResolveTier(100, []entities.FeeTier{
			{ThresholdCents: 5000, FeeCents: 799},
			{ThresholdCents: 5000, FeeCents: 599},
		})
		if got != 599 {
			t.Fatalf("got %d, want 599", got)
		}
	})

	t.Run("unordered tiers", func(t *testing.T) {
		got := ResolveTier(100, []entities.FeeTier{
			{ThresholdCents: 10000, FeeCents: 799},
			{ThresholdCents: 5000, FeeCents: 599},
		})
		if got != 599 {
			t.Fatalf("got %d, want 599", got)
		}
	})
}

func TestDeliveryFee_Degradations(t *testing.T) {
	t.Run("nil rule", func(t *testing.T) {
		got, err := DeliveryFee(5000, nil)
		if err != nil || got != 0 {
			t.Fatalf("expected 0/nil, got %d/%v", got, err)
		}
	})

	t.Run("inactive rule", func(t *testing.T) {
		rule := flatRule(599)
		rule.Active = false
		got, err := DeliveryFee(5000, rule)
		if err != nil || got != 0 {
			t.Fatalf("expected 0/nil, got %d/%v", got, err)
		}
	})

	t.Run("negative subtotal rejected", func(t *testing.T) {
		_, err := DeliveryFee(-1, flatRule(599))
		if !errors.Is(err, ErrNegativeSubtotal) {
			t.Fatalf("expected ErrNegativeSubtotal, got %v", err)
		}
	})
}

func TestTax(t *testing.T) {
	t.Run("fees taxable", func(t *testing.T) {
		// taxable base 50799, 8.25% -> 4191.
		got, err := Tax(50000, 799, 0, true, 0.0825)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 4191 {
			t.Fatalf("got %d, want 4191", got)
		}
	})

	t.Run("fees not taxable", func(t *testing.T) {
		got, err := Tax(50000, 799, 250, false, 0.0825)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 4125 {
			t.Fatalf("got %d, want 4125", got)
		}
	})

	t.Run("zero rate", func(t *testing.T) {
		got, err := Tax(50000, 799, 0, true, 0)
		if err != nil || got != 0 {
			t.Fatalf("expected 0/nil, got %d/%v", got, err)
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		_, err := Tax(50000, 0, 0, false, 8.25)
		if !errors.Is(err, ErrInvalidTaxRate) {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})
}

func TestTaxRate(t *testing.T) {
	ws := entities.Workspace{SalesTaxRatePct: 0.07}

	if got := TaxRate(entities.Company{}, ws); got != 0.07 {
		t.Fatalf("got %v, want workspace default 0.07", got)
	}

	override := 0.0825
	if got := TaxRate(entities.Company{TaxOverridePct: &override}, ws); got != 0.0825 {
		t.Fatalf("got %v, want override 0.0825", got)
	}

	// Zero override is still an override, not an absence.
	zero := 0.0
	if got := TaxRate(entities.Company{TaxOverridePct: &zero}, ws); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestQuote(t *testing.T) {
	ws := entities.Workspace{SalesTaxRatePct: 0.0825}
	company := entities.Company{FeesTaxable: true}
	rule := tieredRule(
		entities.FeeTier{ThresholdCents: 5000, FeeCents: 599},
		entities.FeeTier{ThresholdCents: 10000, FeeCents: 799},
	)
	// Widen the second bracket so the $500 subtotal lands in it.
	rule.Tiers[1].ThresholdCents = 60000

	q, err := Quote(50000, 0, company, ws, rule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DeliveryFeeCents != 799 {
		t.Fatalf("delivery fee = %d, want 799", q.DeliveryFeeCents)
	}
	if q.TaxCents != 4191 {
		t.Fatalf("tax = %d, want 4191", q.TaxCents)
	}
	if q.TotalCents != 54990 {
		t.Fatalf("total = %d, want 54990", q.TotalCents)
	}

	t.Run("no rule configured", func(t *testing.T) {
		q, err := Quote(10000, 0, entities.Company{}, entities.Workspace{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.DeliveryFeeCents != 0 || q.TaxCents != 0 || q.TotalCents != 10000 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("negative other fees rejected", func(t *testing.T) {
		_, err := Quote(10000, -1, company, ws, rule)
		if !errors.Is(err, ErrNegativeOtherFees) {
			t.Fatalf("expected ErrNegativeOtherFees, got %v", err)
		}
	})
}
