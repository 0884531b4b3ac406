package services

import (
	"fmt"
	"strings"
	"time"

	"supply_manager/internal/aggregation"
	"supply_manager/internal/models"
	"supply_manager/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	SubmitOrders(hotel models.Hotel, items []models.PendingItem, date string) ([]models.Order, error)
	DeleteOrder(orderID string)
	UpdateItemStatus(itemName, date string, status models.OrderStatus, note string) error
	HotelDashboard(hotelID, date string) *HotelDashboard
	DealerDashboard(date string) *DealerDashboard
}

// OrderLine is one hotel order with its priced line total.
type OrderLine struct {
	models.Order
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// HotelDashboard is the hotel's view of its own day: individual orders with
// per-order status counts and the total bill.
type HotelDashboard struct {
	Date           string          `json:"date"`
	Orders         []OrderLine     `json:"orders"`
	TotalOrders    int             `json:"totalOrders"`
	PendingCount   int             `json:"pendingCount"`
	CompletedCount int             `json:"completedCount"`
	TotalBill      decimal.Decimal `json:"totalBill"`
}

type DealerSummary struct {
	TotalItems        int                        `json:"totalItems"`
	TotalHotels       int                        `json:"totalHotels"`
	TotalPendingItems int                        `json:"totalPendingItems"`
	TotalValue        decimal.Decimal            `json:"totalValue"`
	ByItem            map[string]decimal.Decimal `json:"byItem"`
}

// DealerDashboard is the dealer's view of one date: demand aggregated per
// item plus the headline summary numbers.
type DealerDashboard struct {
	Date    string                       `json:"date"`
	Summary DealerSummary                `json:"summary"`
	Items   []aggregation.AggregatedItem `json:"items"`
}

type orderService struct {
	orders *store.OrderStore
	prices *store.PriceStore
}

func NewOrderService(orders *store.OrderStore, prices *store.PriceStore) OrderService {
	return &orderService{orders: orders, prices: prices}
}

// SubmitOrders fans one hotel submission out into one order per item. Every
// item is validated before any order is created: a single bad quantity or
// empty name rejects the whole submission and leaves the store untouched.
func (s *orderService) SubmitOrders(hotel models.Hotel, items []models.PendingItem, date string) ([]models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: submission has no items", ErrValidation)
	}
	if date == "" {
		date = models.Today()
	}

	quantities := make([]decimal.Decimal, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ItemName) == "" {
			return nil, fmt.Errorf("%w: item name is required", ErrValidation)
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(item.Quantity))
		if err != nil {
			return nil, fmt.Errorf("%w: quantity %q for item %q is not a number", ErrValidation, item.Quantity, item.ItemName)
		}
		if qty.Sign() <= 0 {
			return nil, fmt.Errorf("%w: quantity for item %q must be positive", ErrValidation, item.ItemName)
		}
		quantities[i] = qty
	}

	// All items of one submission share the hotel identity, date and
	// timestamp; ids are unique per order.
	now := time.Now()
	orders := make([]models.Order, len(items))
	for i, item := range items {
		orders[i] = models.Order{
			ID:         "order_" + uuid.NewString(),
			HotelID:    hotel.ID,
			HotelName:  hotel.Name,
			ItemName:   strings.TrimSpace(item.ItemName),
			Quantity:   quantities[i],
			Unit:       item.Unit,
			Date:       date,
			Status:     models.StatusPending,
			DealerNote: "",
			Timestamp:  now,
		}
	}

	s.orders.Append(orders...)
	return orders, nil
}

func (s *orderService) DeleteOrder(orderID string) {
	s.orders.Remove(orderID)
}

// UpdateItemStatus gates the interactive rule before reconciling: partial
// and unavailable need a dealer note, other statuses clear it.
func (s *orderService) UpdateItemStatus(itemName, date string, status models.OrderStatus, note string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	switch status {
	case models.StatusPartial, models.StatusUnavailable:
		if strings.TrimSpace(note) == "" {
			return fmt.Errorf("%w: a note is required for %s status", ErrValidation, status)
		}
	default:
		note = ""
	}

	s.orders.UpdateStatus(itemName, date, status, note)
	return nil
}

func (s *orderService) HotelDashboard(hotelID, date string) *HotelDashboard {
	if date == "" {
		date = models.Today()
	}
	orders := s.orders.ForHotel(hotelID, date)
	prices := s.prices.Snapshot()

	lines := make([]OrderLine, len(orders))
	totalBill := decimal.Zero
	for i, order := range orders {
		unitPrice := prices[strings.ToLower(order.ItemName)].Amount
		lineTotal := order.Quantity.Mul(unitPrice)
		lines[i] = OrderLine{Order: order, UnitPrice: unitPrice, LineTotal: lineTotal}
		totalBill = totalBill.Add(lineTotal)
	}

	return &HotelDashboard{
		Date:           date,
		Orders:         lines,
		TotalOrders:    len(orders),
		PendingCount:   aggregation.CountByStatus(orders, date, models.StatusPending),
		CompletedCount: aggregation.CountByStatus(orders, date, models.StatusCompleted),
		TotalBill:      totalBill,
	}
}

func (s *orderService) DealerDashboard(date string) *DealerDashboard {
	if date == "" {
		date = models.Today()
	}
	orders := s.orders.All()
	items := aggregation.Aggregate(orders, date, s.prices.Snapshot())

	return &DealerDashboard{
		Date: date,
		Summary: DealerSummary{
			TotalItems:        len(items),
			TotalHotels:       aggregation.UniqueHotelCount(orders, date),
			TotalPendingItems: aggregation.PendingItemCount(items),
			TotalValue:        aggregation.TotalValue(items),
			ByItem:            aggregation.ByItemTotals(items),
		},
		Items: items,
	}
}
