package repository

import (
	"errors"
	"supply_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot keys for the two persisted documents.
const (
	SnapshotOrders = "orders"
	SnapshotPrices = "prices"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository persists whole-value JSON documents. Readers get the
// full blob or ErrSnapshotNotFound; writers replace the blob in full.
type SnapshotRepository interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Load(key string) ([]byte, error) {
	var snapshot models.Snapshot
	err := r.db.First(&snapshot, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return snapshot.Data, nil
}

func (r *snapshotRepository) Save(key string, data []byte) error {
	snapshot := models.Snapshot{Key: key, Data: data}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snapshot).Error
}
