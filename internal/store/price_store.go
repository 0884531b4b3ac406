package store

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"supply_manager/internal/models"
	"supply_manager/internal/repository"
)

// PriceStore holds the dealer's standing price list, keyed by lowercase
// item name. Same persistence contract as the order store: in-memory value
// is authoritative, snapshot rewritten in full after every mutation.
type PriceStore struct {
	mu     sync.Mutex
	prices models.PriceTable
	repo   repository.SnapshotRepository
}

func NewPriceStore(repo repository.SnapshotRepository) *PriceStore {
	s := &PriceStore{prices: models.PriceTable{}, repo: repo}
	s.load()
	return s
}

func (s *PriceStore) load() {
	if s.repo == nil {
		return
	}
	data, err := s.repo.Load(repository.SnapshotPrices)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			log.Printf("price store: failed to load snapshot: %v", err)
		}
		return
	}
	var prices models.PriceTable
	if err := json.Unmarshal(data, &prices); err != nil {
		log.Printf("price store: corrupt snapshot, starting empty: %v", err)
		return
	}
	if prices != nil {
		s.prices = prices
	}
}

func (s *PriceStore) persist() {
	if s.repo == nil {
		return
	}
	raw, err := json.Marshal(s.prices)
	if err != nil {
		log.Printf("price store: failed to marshal snapshot: %v", err)
		return
	}
	if err := s.repo.Save(repository.SnapshotPrices, raw); err != nil {
		log.Printf("price store: failed to persist snapshot: %v", err)
	}
}

// Set upserts the price entry for an item. The key is the lowercased name;
// validation of the amount happens in the price service.
func (s *PriceStore) Set(itemName string, entry models.PriceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[strings.ToLower(itemName)] = entry
	s.persist()
}

// Delete removes the price entry for an item. Absent entries are a no-op.
func (s *PriceStore) Delete(itemName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prices, strings.ToLower(itemName))
	s.persist()
}

// Snapshot returns a copy of the current price table.
func (s *PriceStore) Snapshot() models.PriceTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	prices := make(models.PriceTable, len(s.prices))
	for key, entry := range s.prices {
		prices[key] = entry
	}
	return prices
}
