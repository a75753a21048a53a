package credit

import "testing"

func TestPricingCost(t *testing.T) {
	cases := []struct {
		per, files, want int
	}{
		{1, 120, 120},
		{0, 50, 50},  // zero falls back to one credit per file
		{-3, 50, 50}, // so does a nonsense rate
		{2, 10, 20},
		{1, 0, 0},
		{1, -5, 0},
	}
	for _, tc := range cases {
		p := Pricing{CreditsPerFile: tc.per}
		if got := p.Cost(tc.files); got != tc.want {
			t.Errorf("Pricing{%d}.Cost(%d) = %d, want %d", tc.per, tc.files, got, tc.want)
		}
	}
}
