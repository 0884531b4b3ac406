package aggregation

import (
	"strings"
	"supply_manager/internal/models"

	"github.com/shopspring/decimal"
)

// HotelContribution is one order's share of an aggregated item. Orders are
// not deduplicated by hotel: two line items from the same hotel yield two
// contributions.
type HotelContribution struct {
	HotelID   string             `json:"hotelId"`
	HotelName string             `json:"hotelName"`
	Quantity  decimal.Decimal    `json:"quantity"`
	Status    models.OrderStatus `json:"status"`
	OrderID   string             `json:"orderId"`
}

// AggregatedItem is the dealer-facing per-item demand summary for one date.
// It is derived state, recomputed on demand, never persisted.
type AggregatedItem struct {
	ItemName      string              `json:"itemName"`
	TotalQuantity decimal.Decimal     `json:"totalQuantity"`
	Unit          string              `json:"unit"`
	Price         models.PriceEntry   `json:"price"`
	Hotels        []HotelContribution `json:"hotels"`
}

// Aggregate collapses the orders for one date into per-item summaries.
//
// Grouping is by lowercased item name; the display name and unit come from
// the first order seen for a group, and groups appear in first-seen order.
// A missing price entry yields a zero price, never an error. The function
// is pure: it does not mutate orders or prices, and identical inputs give
// identical output.
func Aggregate(orders []models.Order, date string, prices models.PriceTable) []AggregatedItem {
	items := []AggregatedItem{}
	index := make(map[string]int)

	for _, order := range orders {
		if order.Date != date {
			continue
		}

		key := strings.ToLower(order.ItemName)
		i, ok := index[key]
		if !ok {
			price, found := prices[key]
			if !found {
				price = models.PriceEntry{Amount: decimal.Zero, Unit: order.Unit}
			}
			items = append(items, AggregatedItem{
				ItemName:      order.ItemName,
				TotalQuantity: decimal.Zero,
				Unit:          order.Unit,
				Price:         price,
			})
			i = len(items) - 1
			index[key] = i
		}

		items[i].TotalQuantity = items[i].TotalQuantity.Add(order.Quantity)
		items[i].Hotels = append(items[i].Hotels, HotelContribution{
			HotelID:   order.HotelID,
			HotelName: order.HotelName,
			Quantity:  order.Quantity,
			Status:    order.Status,
			OrderID:   order.ID,
		})
	}

	return items
}
