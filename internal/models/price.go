package models

import "github.com/shopspring/decimal"

// PriceEntry is the dealer's standing price for an item.
type PriceEntry struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

// PriceTable maps lowercase item names to their price entry. At most one
// entry per item; prices are not date-scoped.
type PriceTable map[string]PriceEntry
