package analytics

import (
	"sort"
	"testing"

	"github.com/marketlens/marketlens/internal/models"
)

func record(channel, area, period string, orders float64) models.SalesRecord {
	return models.SalesRecord{
		Channel: channel,
		City:    "Dubai",
		Area:    area,
		Period:  period,
		Orders:  orders,
	}
}

func TestAggregateSkipsUnknownChannels(t *testing.T) {
	records := []models.SalesRecord{
		record("talabat", "Marina", "2024-01", 100),
		record("zomato", "Marina", "2024-01", 999),
		record("", "Marina", "2024-01", 999),
	}

	grouped := Aggregate(records, models.DimensionArea)
	sums, ok := grouped["Marina"]
	if !ok {
		t.Fatal("expected Marina group")
	}

	var total float64
	for _, ch := range models.AllChannels {
		total += sums[ch].Orders
	}
	if total != 100 {
		t.Errorf("expected 100 orders after dropping unknown channels, got %v", total)
	}
}

func TestAggregateSkipsEmptyGroupKey(t *testing.T) {
	records := []models.SalesRecord{
		record("talabat", "", "2024-01", 100),
		record("talabat", "  ", "2024-01", 50),
		record("deliveroo", "Marina", "2024-01", 80),
	}

	grouped := Aggregate(records, models.DimensionArea)
	if len(grouped) != 1 {
		t.Fatalf("expected exactly one group, got %d", len(grouped))
	}
	if _, ok := grouped["Marina"]; !ok {
		t.Error("expected Marina group to survive")
	}
}

func TestAggregateInitializesAllChannels(t *testing.T) {
	records := []models.SalesRecord{
		record("talabat", "Marina", "2024-01", 100),
	}

	grouped := Aggregate(records, models.DimensionArea)
	sums := grouped["Marina"]
	for _, ch := range models.AllChannels {
		if _, ok := sums[ch]; !ok {
			t.Errorf("expected %s to be initialized", ch)
		}
	}
	if sums[models.ChannelNoon].Orders != 0 {
		t.Errorf("expected zero orders for Noon, got %v", sums[models.ChannelNoon].Orders)
	}
}

func TestAggregateAccumulates(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "talabat", Area: "Marina", Orders: 10, GrossSales: 500, AdsSpend: 20, AdsReturn: 80},
		{Channel: "Talabat", Area: "Marina", Orders: 5, GrossSales: 250, AdsSpend: 10, AdsReturn: 40},
	}

	grouped := Aggregate(records, models.DimensionArea)
	sums := grouped["Marina"][models.ChannelTalabat]
	if sums.Orders != 15 || sums.GrossSales != 750 || sums.AdsSpend != 30 || sums.AdsReturn != 120 {
		t.Errorf("unexpected sums: %+v", sums)
	}
}

func TestAggregateByChannelDimensionCanonicalizesKey(t *testing.T) {
	records := []models.SalesRecord{
		record("talabat", "Marina", "2024-01", 10),
		record("Talabat", "Marina", "2024-01", 5),
		record("TALABAT ", "Deira", "2024-01", 5),
	}

	grouped := Aggregate(records, models.DimensionChannel)
	if len(grouped) != 1 {
		t.Fatalf("expected one group regardless of label casing, got %d: %v", len(grouped), SortedKeys(grouped))
	}
	sums, ok := grouped["Talabat"]
	if !ok {
		t.Fatal("expected group keyed by canonical channel name")
	}
	if sums[models.ChannelTalabat].Orders != 20 {
		t.Errorf("expected 20 orders in merged group, got %v", sums[models.ChannelTalabat].Orders)
	}
}

func TestWeekKeySortsChronologically(t *testing.T) {
	keys := []string{
		WeekKey(2024, 10),
		WeekKey(2023, 52),
		WeekKey(2024, 2),
		WeekKey(2024, 7),
	}
	sort.Strings(keys)

	want := []string{"2023-W52", "2024-W02", "2024-W07", "2024-W10"}
	for i, key := range keys {
		if key != want[i] {
			t.Fatalf("expected %v at %d, got %v (all: %v)", want[i], i, key, keys)
		}
	}
}

func TestAggregateByChannelIgnoresDimensions(t *testing.T) {
	records := []models.SalesRecord{
		record("talabat", "Marina", "2024-01", 100),
		record("talabat", "Deira", "2024-02", 40),
		record("keeta", "", "", 7),
	}

	sums := AggregateByChannel(records)
	if sums[models.ChannelTalabat].Orders != 140 {
		t.Errorf("expected 140 Talabat orders, got %v", sums[models.ChannelTalabat].Orders)
	}
	if sums[models.ChannelKeeta].Orders != 7 {
		t.Errorf("expected Keeta row with empty area to still count, got %v", sums[models.ChannelKeeta].Orders)
	}
}
