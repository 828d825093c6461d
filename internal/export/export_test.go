package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/marketlens/marketlens/internal/models"
)

func sampleShareRows() []models.MarketShareRow {
	return []models.MarketShareRow{
		{
			Key:         "2024-01",
			TotalOrders: 180,
			MarketShare: map[models.Channel]float64{
				models.ChannelTalabat:   55.5555,
				models.ChannelDeliveroo: 44.4445,
				models.ChannelCareem:    0,
				models.ChannelNoon:      0,
				models.ChannelKeeta:     0,
			},
		},
	}
}

func TestMarketShareReportShape(t *testing.T) {
	report := MarketShareReport("market_share_monthly", sampleShareRows())
	if report.Name != "market_share_monthly" {
		t.Errorf("name = %q", report.Name)
	}
	if len(report.Rows) != 1 || len(report.Records) != 1 {
		t.Fatalf("expected one row, got %d/%d", len(report.Rows), len(report.Records))
	}
	if len(report.Rows[0]) != len(report.Headers) {
		t.Errorf("row width %d does not match %d headers", len(report.Rows[0]), len(report.Headers))
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	report := MarketShareReport("market_share_monthly", sampleShareRows())
	if err := writeCSV(&buf, report); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "key,total_orders,talabat") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2024-01,") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	report := ChannelSummaryReport([]models.AggregatedChannelMetric{
		{Channel: models.ChannelTalabat, Orders: 100, GrossSales: 4000, ROAS: 4, AOV: 40},
	})
	if err := writeJSON(&buf, report); err != nil {
		t.Fatal(err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0]["channel"] != "Talabat" {
		t.Errorf("channel = %v", rows[0]["channel"])
	}
	if rows[0]["roas"].(float64) != 4 {
		t.Errorf("roas = %v", rows[0]["roas"])
	}
}

func TestAreaSignalReportShape(t *testing.T) {
	report := AreaSignalReport([]models.AreaSignal{
		{
			Area:           "Marina",
			City:           "Dubai",
			TotalOrders:    46000,
			CuisineCount:   3,
			SignalStrength: 3,
			Location:       models.Location{Lat: 25.0772, Lng: 55.1335},
		},
	})
	if len(report.Records) != 1 {
		t.Fatalf("expected one record, got %d", len(report.Records))
	}
	row, ok := report.Records[0].(areaSignalRow)
	if !ok {
		t.Fatalf("unexpected record type %T", report.Records[0])
	}
	if row.SignalStrength != 3 || row.Lat != 25.0772 {
		t.Errorf("unexpected record: %+v", row)
	}
}
