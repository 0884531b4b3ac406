package aggregation

import (
	"strings"
	"supply_manager/internal/models"

	"github.com/shopspring/decimal"
)

// TotalValue is the monetary value of the aggregated demand: the sum of
// totalQuantity times unit price over all items.
func TotalValue(items []AggregatedItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalQuantity.Mul(item.Price.Amount))
	}
	return total
}

// PendingItemCount counts aggregated items with at least one pending
// contributing order. This is the dealer view; hotels count individual
// pending orders instead (CountByStatus).
func PendingItemCount(items []AggregatedItem) int {
	count := 0
	for _, item := range items {
		for _, hotel := range item.Hotels {
			if hotel.Status == models.StatusPending {
				count++
				break
			}
		}
	}
	return count
}

// CountByStatus counts individual orders on a date with the given status.
func CountByStatus(orders []models.Order, date string, status models.OrderStatus) int {
	count := 0
	for _, order := range orders {
		if order.Date == date && order.Status == status {
			count++
		}
	}
	return count
}

// UniqueHotelCount counts distinct hotels with at least one order on the
// given date.
func UniqueHotelCount(orders []models.Order, date string) int {
	seen := make(map[string]bool)
	for _, order := range orders {
		if order.Date == date {
			seen[order.HotelID] = true
		}
	}
	return len(seen)
}

// ByItemTotals maps lowercase item names to their total quantity, the
// summary.byItem shape of the dealer dashboard.
func ByItemTotals(items []AggregatedItem) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		totals[strings.ToLower(item.ItemName)] = item.TotalQuantity
	}
	return totals
}
