package domain

import "time"

// KVEntry backs the key-value persistence boundary. One row per (namespace, key).
type KVEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Namespace string    `gorm:"type:varchar(64);not null;uniqueIndex:uidx_kv_ns_key" json:"namespace"`
	Key       string    `gorm:"column:entry_key;type:varchar(64);not null;uniqueIndex:uidx_kv_ns_key" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
