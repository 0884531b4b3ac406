package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single hotel line item. Orders are immutable except for the
// dealer-driven status/note fields; they are removed, never edited.
type Order struct {
	ID         string          `json:"id"`
	HotelID    string          `json:"hotelId"`
	HotelName  string          `json:"hotelName"`
	ItemName   string          `json:"itemName"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Status     OrderStatus     `json:"status"`
	DealerNote string          `json:"dealerNote"`
	Timestamp  time.Time       `json:"timestamp"`
}

type OrderStatus string

const (
	StatusPending     OrderStatus = "pending"
	StatusPartial     OrderStatus = "partial"
	StatusCompleted   OrderStatus = "completed"
	StatusUnavailable OrderStatus = "unavailable"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPartial, StatusCompleted, StatusUnavailable:
		return true
	}
	return false
}

// PendingItem is one line of a hotel submission before validation.
// Quantity stays textual until the order service parses it.
type PendingItem struct {
	ItemName string `json:"itemName"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// Hotel identifies the requesting hotel on a submission.
type Hotel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DateFormat is the calendar-day partition key layout for orders.
const DateFormat = "2006-01-02"

func Today() string {
	return time.Now().Format(DateFormat)
}
