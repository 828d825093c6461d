package factories

import (
	"testing"

	"github.com/marketlens/marketlens/internal/models"
)

func TestCreateRecordsDeterministicForSeed(t *testing.T) {
	a := NewSalesFactory(7, "2024-06", "Dubai").CreateRecords(2000, 3)
	b := NewSalesFactory(7, "2024-06", "Dubai").CreateRecords(2000, 3)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	dirty := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
		if _, ok := models.ParseChannel(a[i].Channel); !ok {
			dirty++
		}
	}
	// The dirty-label branch must also repeat between runs, so a sample this
	// size should have exercised it.
	if dirty == 0 {
		t.Error("expected some dirty channel labels in 2000 records")
	}
}

func TestCreateRecordsShape(t *testing.T) {
	records := NewSalesFactory(1, "2024-06", "Dubai").CreateRecords(200, 6)

	known := 0
	for _, rec := range records {
		if rec.Orders < 0 || rec.GrossSales < 0 || rec.AdsSpend < 0 {
			t.Fatalf("negative metric in %+v", rec)
		}
		if rec.NetSales > rec.GrossSales {
			t.Fatalf("net above gross in %+v", rec)
		}
		if rec.Period < "2024-01" || rec.Period > "2024-06" {
			t.Fatalf("period out of range: %s", rec.Period)
		}
		if _, ok := models.ParseChannel(rec.Channel); ok {
			known++
		}
	}
	// Most rows carry a real channel; a small share is deliberately dirty.
	if known < 150 {
		t.Errorf("too many dirty channels: %d/200 valid", known)
	}
	if known == 200 {
		t.Log("no dirty rows generated this seed; acceptable but unusual")
	}
}
