package models

import "time"

// SalesRecord is a single warehouse row: one channel in one location for one
// period (month or week). The warehouse layer canonicalizes periods before
// these records reach the analytics engine.
type SalesRecord struct {
	Channel       string  `json:"channel"`
	City          string  `json:"city"`
	Area          string  `json:"area"`
	Cuisine       string  `json:"cuisine"`
	Period        string  `json:"period"`
	Orders        float64 `json:"orders"`
	NetSales      float64 `json:"net_sales"`
	GrossSales    float64 `json:"gross_sales"`
	AdsSpend      float64 `json:"ads_spend"`
	DiscountSpend float64 `json:"discount_spend"`
	AdsReturn     float64 `json:"ads_return"`
}

// ChannelSums holds the raw additive totals for one channel within a group.
type ChannelSums struct {
	Orders        float64 `json:"orders"`
	NetSales      float64 `json:"net_sales"`
	GrossSales    float64 `json:"gross_sales"`
	AdsSpend      float64 `json:"ads_spend"`
	DiscountSpend float64 `json:"discount_spend"`
	AdsReturn     float64 `json:"ads_return"`
}

// Add accumulates one record into the sums. Addition is commutative, so
// accumulation order never matters.
func (s *ChannelSums) Add(r SalesRecord) {
	s.Orders += r.Orders
	s.NetSales += r.NetSales
	s.GrossSales += r.GrossSales
	s.AdsSpend += r.AdsSpend
	s.DiscountSpend += r.DiscountSpend
	s.AdsReturn += r.AdsReturn
}

// AggregatedChannelMetric is one row of the per-channel summary table:
// raw sums plus the derived ratios.
type AggregatedChannelMetric struct {
	Channel       Channel `json:"channel"`
	Orders        float64 `json:"orders"`
	NetSales      float64 `json:"net_sales"`
	GrossSales    float64 `json:"gross_sales"`
	AdsSpend      float64 `json:"ads_spend"`
	DiscountSpend float64 `json:"discount_spend"`
	AdsReturn     float64 `json:"ads_return"`
	ROAS          float64 `json:"roas"`
	AOV           float64 `json:"aov"`
}

// MarketShareRow is one grouping key (a month, week, area or cuisine label)
// with every channel's share of that key's order count, in percent.
type MarketShareRow struct {
	Key         string              `json:"key"`
	TotalOrders float64             `json:"total_orders"`
	MarketShare map[Channel]float64 `json:"market_share"`
}

// AreaSignal annotates one area with its market shares and a 1-5 maturity
// score derived from order volume and cuisine diversity.
type AreaSignal struct {
	Area           string              `json:"area"`
	City           string              `json:"city"`
	MarketShare    map[Channel]float64 `json:"market_share"`
	TotalOrders    float64             `json:"total_orders"`
	CuisineCount   int                 `json:"cuisine_count"`
	SignalStrength int                 `json:"signal_strength"`
	Location       Location            `json:"location"`
}

// DashboardUser is a dashboard login managed through the admin screens.
// PasswordHash is opaque to this service; authentication lives upstream.
type DashboardUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
