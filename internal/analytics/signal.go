package analytics

// SignalStrength scores an area's market maturity from 1 to 5 using order
// volume and cuisine diversity. Tiers are checked top-down and either
// condition is enough to hit a tier, so the first match wins.
func SignalStrength(totalOrders float64, cuisineCount int) int {
	switch {
	case totalOrders >= 100000 || cuisineCount >= 6:
		return 5
	case totalOrders >= 50000 || cuisineCount >= 5:
		return 4
	case totalOrders >= 40000 || cuisineCount >= 4:
		return 3
	case totalOrders >= 20000 || cuisineCount >= 3:
		return 2
	default:
		return 1
	}
}
