package analytics

import (
	"sort"

	"github.com/marketlens/marketlens/internal/models"
)

// ROAS is ad return over ad spend. Zero spend reports zero, never NaN or
// Inf; a chart cell with no ad spend reads 0, same as no return.
func ROAS(adsReturn, adsSpend float64) float64 {
	if adsSpend > 0 {
		return adsReturn / adsSpend
	}
	return 0
}

// AOV is gross sales over order count, zero when there are no orders.
func AOV(grossSales, orders float64) float64 {
	if orders > 0 {
		return grossSales / orders
	}
	return 0
}

// ChannelSummary turns per-channel totals into the summary table rows.
// Channels with zero orders are dropped from the summary; the market-share
// breakdowns are the place where silent channels still show up as 0.
func ChannelSummary(sums map[models.Channel]*models.ChannelSums) []models.AggregatedChannelMetric {
	metrics := make([]models.AggregatedChannelMetric, 0, len(models.AllChannels))
	for _, ch := range models.AllChannels {
		s, ok := sums[ch]
		if !ok || s.Orders == 0 {
			continue
		}
		metrics = append(metrics, models.AggregatedChannelMetric{
			Channel:       ch,
			Orders:        s.Orders,
			NetSales:      s.NetSales,
			GrossSales:    s.GrossSales,
			AdsSpend:      s.AdsSpend,
			DiscountSpend: s.DiscountSpend,
			AdsReturn:     s.AdsReturn,
			ROAS:          ROAS(s.AdsReturn, s.AdsSpend),
			AOV:           AOV(s.GrossSales, s.Orders),
		})
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Orders > metrics[j].Orders
	})
	return metrics
}

// MarketShare computes every channel's share of the group's order count, in
// percent. Shares are order-based, never revenue-based. A group with no
// orders reports 0 for every channel.
func MarketShare(sums map[models.Channel]*models.ChannelSums) (map[models.Channel]float64, float64) {
	var total float64
	for _, ch := range models.AllChannels {
		if s, ok := sums[ch]; ok {
			total += s.Orders
		}
	}
	share := make(map[models.Channel]float64, len(models.AllChannels))
	for _, ch := range models.AllChannels {
		var orders float64
		if s, ok := sums[ch]; ok {
			orders = s.Orders
		}
		if total > 0 {
			share[ch] = orders / total * 100
		} else {
			share[ch] = 0
		}
	}
	return share, total
}

// MarketShareRows computes a MarketShareRow for every group key, sorted by
// key so month and week series come out chronological.
func MarketShareRows(grouped GroupedSums) []models.MarketShareRow {
	rows := make([]models.MarketShareRow, 0, len(grouped))
	for _, key := range SortedKeys(grouped) {
		share, total := MarketShare(grouped[key])
		rows = append(rows, models.MarketShareRow{
			Key:         key,
			TotalOrders: total,
			MarketShare: share,
		})
	}
	return rows
}

// RevenueRetention is net sales over gross sales, the share of revenue kept
// after discounts. Zero gross reports zero.
func RevenueRetention(netSales, grossSales float64) float64 {
	if grossSales > 0 {
		return netSales / grossSales
	}
	return 0
}
