package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageEntry is one named slot of the key-value store.
type StorageEntry struct {
	Key       string         `gorm:"primaryKey;column:slot_key;size:191"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
