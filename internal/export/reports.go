package export

import (
	"fmt"

	"github.com/marketlens/marketlens/internal/models"
)

// Report is one exportable table. Headers and Rows drive the csv/json/xlsx
// sinks; Schema and Records carry the same data as tagged structs for the
// parquet writer.
type Report struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
	Schema  interface{}
	Records []interface{}
}

type channelSummaryRow struct {
	Channel       string  `parquet:"name=channel,type=BYTE_ARRAY,convertedtype=UTF8"`
	Orders        float64 `parquet:"name=orders,type=DOUBLE"`
	NetSales      float64 `parquet:"name=net_sales,type=DOUBLE"`
	GrossSales    float64 `parquet:"name=gross_sales,type=DOUBLE"`
	AdsSpend      float64 `parquet:"name=ads_spend,type=DOUBLE"`
	DiscountSpend float64 `parquet:"name=discount_spend,type=DOUBLE"`
	AdsReturn     float64 `parquet:"name=ads_return,type=DOUBLE"`
	ROAS          float64 `parquet:"name=roas,type=DOUBLE"`
	AOV           float64 `parquet:"name=aov,type=DOUBLE"`
}

type marketShareRow struct {
	Key         string  `parquet:"name=key,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalOrders float64 `parquet:"name=total_orders,type=DOUBLE"`
	Talabat     float64 `parquet:"name=talabat,type=DOUBLE"`
	Deliveroo   float64 `parquet:"name=deliveroo,type=DOUBLE"`
	Careem      float64 `parquet:"name=careem,type=DOUBLE"`
	Noon        float64 `parquet:"name=noon,type=DOUBLE"`
	Keeta       float64 `parquet:"name=keeta,type=DOUBLE"`
}

type areaSignalRow struct {
	Area           string  `parquet:"name=area,type=BYTE_ARRAY,convertedtype=UTF8"`
	City           string  `parquet:"name=city,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalOrders    float64 `parquet:"name=total_orders,type=DOUBLE"`
	CuisineCount   int32   `parquet:"name=cuisine_count,type=INT32"`
	SignalStrength int32   `parquet:"name=signal_strength,type=INT32"`
	Lat            float64 `parquet:"name=lat,type=DOUBLE"`
	Lng            float64 `parquet:"name=lng,type=DOUBLE"`
}

func ChannelSummaryReport(metrics []models.AggregatedChannelMetric) Report {
	report := Report{
		Name: "channel_summary",
		Headers: []string{
			"channel", "orders", "net_sales", "gross_sales",
			"ads_spend", "discount_spend", "ads_return", "roas", "aov",
		},
		Schema: new(channelSummaryRow),
	}
	for _, m := range metrics {
		report.Rows = append(report.Rows, []interface{}{
			m.Channel.String(), m.Orders, m.NetSales, m.GrossSales,
			m.AdsSpend, m.DiscountSpend, m.AdsReturn, m.ROAS, m.AOV,
		})
		report.Records = append(report.Records, channelSummaryRow{
			Channel:       m.Channel.String(),
			Orders:        m.Orders,
			NetSales:      m.NetSales,
			GrossSales:    m.GrossSales,
			AdsSpend:      m.AdsSpend,
			DiscountSpend: m.DiscountSpend,
			AdsReturn:     m.AdsReturn,
			ROAS:          m.ROAS,
			AOV:           m.AOV,
		})
	}
	return report
}

func MarketShareReport(name string, rows []models.MarketShareRow) Report {
	report := Report{
		Name: name,
		Headers: []string{
			"key", "total_orders",
			"talabat", "deliveroo", "careem", "noon", "keeta",
		},
		Schema: new(marketShareRow),
	}
	for _, row := range rows {
		report.Rows = append(report.Rows, []interface{}{
			row.Key, row.TotalOrders,
			row.MarketShare[models.ChannelTalabat],
			row.MarketShare[models.ChannelDeliveroo],
			row.MarketShare[models.ChannelCareem],
			row.MarketShare[models.ChannelNoon],
			row.MarketShare[models.ChannelKeeta],
		})
		report.Records = append(report.Records, marketShareRow{
			Key:         row.Key,
			TotalOrders: row.TotalOrders,
			Talabat:     row.MarketShare[models.ChannelTalabat],
			Deliveroo:   row.MarketShare[models.ChannelDeliveroo],
			Careem:      row.MarketShare[models.ChannelCareem],
			Noon:        row.MarketShare[models.ChannelNoon],
			Keeta:       row.MarketShare[models.ChannelKeeta],
		})
	}
	return report
}

func AreaSignalReport(signals []models.AreaSignal) Report {
	report := Report{
		Name: "area_signals",
		Headers: []string{
			"area", "city", "total_orders", "cuisine_count",
			"signal_strength", "lat", "lng",
		},
		Schema: new(areaSignalRow),
	}
	for _, s := range signals {
		report.Rows = append(report.Rows, []interface{}{
			s.Area, s.City, s.TotalOrders, s.CuisineCount,
			s.SignalStrength, s.Location.Lat, s.Location.Lng,
		})
		report.Records = append(report.Records, areaSignalRow{
			Area:           s.Area,
			City:           s.City,
			TotalOrders:    s.TotalOrders,
			CuisineCount:   int32(s.CuisineCount),
			SignalStrength: int32(s.SignalStrength),
			Lat:            s.Location.Lat,
			Lng:            s.Location.Lng,
		})
	}
	return report
}

func formatCell(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
