package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"supply_manager/internal/models"
	"supply_manager/internal/repository"
)

// OrderStore holds the full order collection for the running session. The
// in-memory list is the source of truth; every mutation triggers a
// best-effort rewrite of the whole persisted snapshot. A mutex serializes
// mutations so the store is safe behind a multi-client server.
type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	repo   repository.SnapshotRepository
}

// NewOrderStore loads the persisted snapshot if one exists. A missing or
// corrupt snapshot starts the store empty, never fails.
func NewOrderStore(repo repository.SnapshotRepository) *OrderStore {
	s := &OrderStore{repo: repo}
	s.load()
	return s
}

func (s *OrderStore) load() {
	if s.repo == nil {
		return
	}
	data, err := s.repo.Load(repository.SnapshotOrders)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			log.Printf("order store: failed to load snapshot: %v", err)
		}
		return
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("order store: corrupt snapshot, starting empty: %v", err)
		return
	}
	s.orders = orders
}

// persist rewrites the full snapshot. Failures are logged and do not roll
// back the in-memory mutation. Callers must hold the mutex.
func (s *OrderStore) persist() {
	if s.repo == nil {
		return
	}
	data, err := json.Marshal(s.orders)
	if err != nil {
		log.Printf("order store: failed to marshal snapshot: %v", err)
		return
	}
	if err := s.repo.Save(repository.SnapshotOrders, data); err != nil {
		log.Printf("order store: failed to persist snapshot: %v", err)
	}
}

// Append adds new orders to the end of the collection.
func (s *OrderStore) Append(orders ...models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, orders...)
	s.persist()
}

// Remove deletes the order with the given id. Absent ids are a no-op.
func (s *OrderStore) Remove(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = RemoveOrder(s.orders, orderID)
	s.persist()
}

// UpdateStatus applies a dealer status update to every order matching the
// item and date.
func (s *OrderStore) UpdateStatus(itemName, date string, status models.OrderStatus, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = UpdateStatus(s.orders, itemName, date, status, note)
	s.persist()
}

// All returns a copy of the full order collection in insertion order.
func (s *OrderStore) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// ForDate returns a copy of the orders on the given date.
func (s *OrderStore) ForDate(date string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.Order{}
	for _, order := range s.orders {
		if order.Date == date {
			result = append(result, order)
		}
	}
	return result
}

// ForHotel returns a copy of one hotel's orders on the given date.
func (s *OrderStore) ForHotel(hotelID, date string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.Order{}
	for _, order := range s.orders {
		if order.HotelID == hotelID && order.Date == date {
			result = append(result, order)
		}
	}
	return result
}
