package store

import (
	"strings"
	"supply_manager/internal/models"
)

// UpdateStatus returns a new order list with status and dealer note applied
// to every order matching the item name (case-insensitive) and date.
// Non-matching orders pass through unchanged. No validation happens here;
// callers gate the note requirement for partial/unavailable transitions.
func UpdateStatus(orders []models.Order, itemName, date string, status models.OrderStatus, note string) []models.Order {
	key := strings.ToLower(itemName)
	updated := make([]models.Order, len(orders))
	for i, order := range orders {
		if order.Date == date && strings.ToLower(order.ItemName) == key {
			order.Status = status
			order.DealerNote = note
		}
		updated[i] = order
	}
	return updated
}

// RemoveOrder returns a new order list without the order carrying the given
// id. At most one order is removed; an absent id is a no-op, not an error.
func RemoveOrder(orders []models.Order, orderID string) []models.Order {
	result := make([]models.Order, 0, len(orders))
	removed := false
	for _, order := range orders {
		if !removed && order.ID == orderID {
			removed = true
			continue
		}
		result = append(result, order)
	}
	return result
}
