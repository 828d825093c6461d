package analytics

import "testing"

func TestSignalStrengthTiers(t *testing.T) {
	cases := []struct {
		name         string
		totalOrders  float64
		cuisineCount int
		want         int
	}{
		{"huge volume", 100000, 0, 5},
		{"high diversity", 0, 6, 5},
		{"tier 4 orders", 50000, 1, 4},
		{"tier 4 cuisines", 100, 5, 4},
		{"orders tier wins over cuisine tier", 45000, 2, 3},
		{"tier 3 cuisines", 0, 4, 3},
		{"tier 2 orders", 20000, 0, 2},
		{"tier 2 cuisines", 10, 3, 2},
		{"floor", 0, 0, 1},
		{"just under tier 2", 19999, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SignalStrength(tc.totalOrders, tc.cuisineCount)
			if got != tc.want {
				t.Errorf("SignalStrength(%v, %d) = %d, want %d", tc.totalOrders, tc.cuisineCount, got, tc.want)
			}
		})
	}
}

func TestSignalStrengthMonotonicInOrders(t *testing.T) {
	for cuisines := 0; cuisines <= 7; cuisines++ {
		prev := 0
		for _, orders := range []float64{0, 19999, 20000, 39999, 40000, 49999, 50000, 99999, 100000, 500000} {
			score := SignalStrength(orders, cuisines)
			if score < 1 || score > 5 {
				t.Fatalf("score out of range: %d", score)
			}
			if score < prev {
				t.Fatalf("score decreased from %d to %d at orders=%v cuisines=%d", prev, score, orders, cuisines)
			}
			prev = score
		}
	}
}
