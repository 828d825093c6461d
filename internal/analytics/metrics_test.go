package analytics

import (
	"math"
	"testing"

	"github.com/marketlens/marketlens/internal/models"
)

const tolerance = 1e-6

func TestROASZeroSpend(t *testing.T) {
	cases := []struct {
		name      string
		adsReturn float64
		adsSpend  float64
		want      float64
	}{
		{"zero spend", 500, 0, 0},
		{"normal", 400, 100, 4},
		{"zero return", 0, 100, 0},
		{"both zero", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ROAS(tc.adsReturn, tc.adsSpend)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("ROAS must be finite, got %v", got)
			}
			if got != tc.want {
				t.Errorf("ROAS(%v, %v) = %v, want %v", tc.adsReturn, tc.adsSpend, got, tc.want)
			}
		})
	}
}

func TestAOVZeroOrders(t *testing.T) {
	if got := AOV(1000, 0); got != 0 {
		t.Errorf("AOV with zero orders = %v, want 0", got)
	}
	if got := AOV(1000, 20); got != 50 {
		t.Errorf("AOV(1000, 20) = %v, want 50", got)
	}
}

func TestMarketShareSumsTo100(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "talabat", Area: "Marina", Orders: 137},
		{Channel: "deliveroo", Area: "Marina", Orders: 41},
		{Channel: "careem", Area: "Marina", Orders: 19},
		{Channel: "noon", Area: "Marina", Orders: 3},
	}

	share, total := MarketShare(Aggregate(records, models.DimensionArea)["Marina"])
	if total != 200 {
		t.Fatalf("expected 200 total orders, got %v", total)
	}

	var sum float64
	for _, ch := range models.AllChannels {
		sum += share[ch]
	}
	if math.Abs(sum-100) > tolerance {
		t.Errorf("shares sum to %v, want 100", sum)
	}
	if share[models.ChannelKeeta] != 0 {
		t.Errorf("expected Keeta share 0, got %v", share[models.ChannelKeeta])
	}
}

func TestMarketShareZeroOrdersAllZero(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "talabat", Area: "Marina", Orders: 0, GrossSales: 100},
	}

	share, total := MarketShare(Aggregate(records, models.DimensionArea)["Marina"])
	if total != 0 {
		t.Fatalf("expected zero total, got %v", total)
	}
	for _, ch := range models.AllChannels {
		if share[ch] != 0 {
			t.Errorf("expected %s share 0, got %v", ch, share[ch])
		}
	}
}

func TestMarketShareMarinaExample(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "talabat", Area: "Marina", Orders: 100},
		{Channel: "deliveroo", Area: "Marina", Orders: 80},
	}

	share, _ := MarketShare(Aggregate(records, models.DimensionArea)["Marina"])
	if math.Abs(share[models.ChannelTalabat]-55.555555) > 1e-4 {
		t.Errorf("Talabat share = %v, want ~55.56", share[models.ChannelTalabat])
	}
	if math.Abs(share[models.ChannelDeliveroo]-44.444444) > 1e-4 {
		t.Errorf("Deliveroo share = %v, want ~44.44", share[models.ChannelDeliveroo])
	}
	for _, ch := range []models.Channel{models.ChannelCareem, models.ChannelNoon, models.ChannelKeeta} {
		if share[ch] != 0 {
			t.Errorf("expected %s share 0, got %v", ch, share[ch])
		}
	}
}

func TestChannelSummaryDropsZeroOrderChannels(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "talabat", Area: "Marina", Orders: 100, GrossSales: 4000, AdsSpend: 50, AdsReturn: 200},
		{Channel: "noon", Area: "Marina", Orders: 0, AdsSpend: 0},
	}

	summary := ChannelSummary(AggregateByChannel(records))
	if len(summary) != 1 {
		t.Fatalf("expected only Talabat in summary, got %d rows", len(summary))
	}
	row := summary[0]
	if row.Channel != models.ChannelTalabat {
		t.Fatalf("expected Talabat, got %s", row.Channel)
	}
	if row.ROAS != 4 {
		t.Errorf("ROAS = %v, want 4", row.ROAS)
	}
	if row.AOV != 40 {
		t.Errorf("AOV = %v, want 40", row.AOV)
	}

	// The same Noon row still shows up, as zero, in a breakdown.
	share, _ := MarketShare(Aggregate(records, models.DimensionArea)["Marina"])
	if got, ok := share[models.ChannelNoon]; !ok || got != 0 {
		t.Errorf("expected Noon present with share 0 in breakdown, got %v (present=%v)", got, ok)
	}
}

func TestMarketShareRowsSorted(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "talabat", Period: "2024-03", Orders: 10},
		{Channel: "talabat", Period: "2023-11", Orders: 20},
		{Channel: "talabat", Period: "2024-01", Orders: 30},
	}

	rows := MarketShareRows(Aggregate(records, models.DimensionMonth))
	want := []string{"2023-11", "2024-01", "2024-03"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, row := range rows {
		if row.Key != want[i] {
			t.Errorf("row %d key = %v, want %v", i, row.Key, want[i])
		}
	}
}

func TestRevenueRetention(t *testing.T) {
	if got := RevenueRetention(90, 100); math.Abs(got-0.9) > tolerance {
		t.Errorf("RevenueRetention(90, 100) = %v, want 0.9", got)
	}
	if got := RevenueRetention(90, 0); got != 0 {
		t.Errorf("RevenueRetention with zero gross = %v, want 0", got)
	}
}
