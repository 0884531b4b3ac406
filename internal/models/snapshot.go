package models

import "time"

// Snapshot is one whole-value persisted document. The order list and the
// price table are each a single row, rewritten in full after every mutation.
type Snapshot struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Data      []byte    `json:"data" gorm:"type:jsonb"`
	UpdatedAt time.Time `json:"updated_at"`
}
