package analytics

import (
	"sort"
	"strings"

	"github.com/marketlens/marketlens/internal/models"
)

// ResolveFunc maps an area name plus a city fallback to map coordinates.
// The geo resolver satisfies this; tests can plug in a stub.
type ResolveFunc func(area, city string) models.Location

// AreaSignals builds the per-area signal rows: market share, order volume,
// cuisine diversity, the 1-5 signal score and a map coordinate. Records
// with no area or an unknown channel are skipped. Rows come back sorted by
// total orders, busiest areas first.
func AreaSignals(records []models.SalesRecord, resolve ResolveFunc) []models.AreaSignal {
	grouped := Aggregate(records, models.DimensionArea)

	cities := make(map[string]string)
	cuisines := make(map[string]map[string]bool)
	for _, r := range records {
		if _, ok := models.ParseChannel(r.Channel); !ok {
			continue
		}
		area := strings.TrimSpace(r.Area)
		if area == "" {
			continue
		}
		if cities[area] == "" {
			cities[area] = strings.TrimSpace(r.City)
		}
		cuisine := strings.TrimSpace(r.Cuisine)
		if cuisine == "" {
			continue
		}
		if cuisines[area] == nil {
			cuisines[area] = make(map[string]bool)
		}
		cuisines[area][strings.ToLower(cuisine)] = true
	}

	signals := make([]models.AreaSignal, 0, len(grouped))
	for area, sums := range grouped {
		share, total := MarketShare(sums)
		cuisineCount := len(cuisines[area])
		signal := models.AreaSignal{
			Area:           area,
			City:           cities[area],
			MarketShare:    share,
			TotalOrders:    total,
			CuisineCount:   cuisineCount,
			SignalStrength: SignalStrength(total, cuisineCount),
		}
		if resolve != nil {
			signal.Location = resolve(area, cities[area])
		}
		signals = append(signals, signal)
	}
	sort.Slice(signals, func(i, j int) bool {
		if signals[i].TotalOrders != signals[j].TotalOrders {
			return signals[i].TotalOrders > signals[j].TotalOrders
		}
		return signals[i].Area < signals[j].Area
	})
	return signals
}
