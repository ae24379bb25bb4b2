package model

import "time"

// Category is a high-level grouping for listed items, e.g. Electronics,
// Clothing, Furniture.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Item is a listing a user is willing to swap, donate or lend out.
type Item struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	Condition    string    `json:"condition"`
	ExchangeType string    `json:"exchange_type"`
	Location     string    `json:"location"`
	ImageMime    string    `json:"image_mime,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined fields (not always populated).
	CategoryName  string `json:"category_name,omitempty"`
	OwnerUsername string `json:"owner_username,omitempty"`
}

// Item conditions.
const (
	ConditionNew  = "new"
	ConditionGood = "good"
	ConditionFair = "fair"
	ConditionPoor = "poor"
)

// Exchange types.
const (
	ExchangeSwap   = "swap"
	ExchangeDonate = "donate"
	ExchangeReuse  = "reuse"
)

// ValidCondition reports whether condition is a known item condition.
func ValidCondition(condition string) bool {
	switch condition {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ValidExchangeType reports whether exchangeType is a known exchange type.
func ValidExchangeType(exchangeType string) bool {
	switch exchangeType {
	case ExchangeSwap, ExchangeDonate, ExchangeReuse:
		return true
	}
	return false
}

// ConditionName returns the display name for an item condition.
func ConditionName(condition string) string {
	switch condition {
	case ConditionNew:
		return "Like New"
	case ConditionGood:
		return "Good"
	case ConditionFair:
		return "Fair"
	case ConditionPoor:
		return "Well-loved"
	default:
		return condition
	}
}

// ExchangeTypeName returns the display name for an exchange type.
func ExchangeTypeName(exchangeType string) string {
	switch exchangeType {
	case ExchangeSwap:
		return "Swap"
	case ExchangeDonate:
		return "Donate"
	case ExchangeReuse:
		return "Reuse / Borrow"
	default:
		return exchangeType
	}
}
