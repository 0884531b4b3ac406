package services

import (
	"fmt"
	"strings"

	"supply_manager/internal/models"
	"supply_manager/internal/store"

	"github.com/shopspring/decimal"
)

type PriceService interface {
	SetPrice(itemName, amount, unit string) error
	DeletePrice(itemName string)
	ListPrices() models.PriceTable
}

type priceService struct {
	prices *store.PriceStore
}

func NewPriceService(prices *store.PriceStore) PriceService {
	return &priceService{prices: prices}
}

// SetPrice upserts the standing price for an item. The amount arrives as
// text from the form and must parse to a non-negative number; rejection
// leaves the table untouched.
func (s *priceService) SetPrice(itemName, amount, unit string) error {
	if strings.TrimSpace(itemName) == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return fmt.Errorf("%w: price %q is not a number", ErrValidation, amount)
	}
	if value.Sign() < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	s.prices.Set(itemName, models.PriceEntry{Amount: value, Unit: unit})
	return nil
}

func (s *priceService) DeletePrice(itemName string) {
	s.prices.Delete(itemName)
}

func (s *priceService) ListPrices() models.PriceTable {
	return s.prices.Snapshot()
}
