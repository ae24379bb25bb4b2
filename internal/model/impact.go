package model

import "time"

// ImpactLog records estimated environmental benefit attributed to a user.
// Rows are append-only and aggregated by summing per user.
type ImpactLog struct {
	ID                     int64     `json:"id"`
	UserID                 int64     `json:"user_id"`
	ItemsKeptInCirculation int       `json:"items_kept_in_circulation"`
	CO2SavedKg             float64   `json:"co2_saved_kg"`
	CreatedAt              time.Time `json:"created_at"`
}

// ImpactSummary holds summed impact totals for a user. Both fields are
// zero (never null) when the user has no impact logs.
type ImpactSummary struct {
	TotalItemsKept int     `json:"total_items_kept"`
	TotalCO2Saved  float64 `json:"total_co2_saved"`
}

// EstimateCO2SavedKg returns the rough CO2 estimate credited when an item
// changes hands instead of being thrown away. Donations move items to
// someone who needs them outright, swaps keep two households circulating,
// and borrowed items only defer a purchase, so the credit is smaller.
func EstimateCO2SavedKg(exchangeType string) float64 {
	switch exchangeType {
	case ExchangeDonate:
		return 4.0
	case ExchangeSwap:
		return 2.5
	case ExchangeReuse:
		return 1.0
	default:
		return 0
	}
}
