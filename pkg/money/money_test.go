package money

import "testing"

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-1.5, -2},
		{4190.9175, 4191},
	}
	for _, c := range cases {
		if got := RoundHalfAwayFromZero(c.in); got != c.want {
			t.Fatalf("RoundHalfAwayFromZero(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestApplyRate(t *testing.T) {
	if got := ApplyRate(50000, 0.05); got != 2500 {
		t.Fatalf("ApplyRate(50000, 0.05) = %d, want 2500", got)
	}
	if got := ApplyRate(50799, 0.0825); got != 4191 {
		t.Fatalf("ApplyRate(50799, 0.0825) = %d, want 4191", got)
	}
	if got := ApplyRate(12345, 0); got != 0 {
		t.Fatalf("ApplyRate(12345, 0) = %d, want 0", got)
	}
}

func TestDollarCentsRoundTrip(t *testing.T) {
	// Converting dollars to cents and back must be exact to the cent.
	for _, d := range []float64{0, 0.01, 0.1, 1.15, 19.99, 123.45, 9999.99} {
		cents := DollarsToCents(d)
		if back := CentsToDollars(cents); back != d {
			t.Fatalf("round trip %v -> %d -> %v", d, cents, back)
		}
	}
	if got := DollarsToCents(-2.5); got != -250 {
		t.Fatalf("DollarsToCents(-2.5) = %d, want -250", got)
	}
}
