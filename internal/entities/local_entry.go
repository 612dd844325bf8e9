package entities

import (
	"time"
)

// LocalEntry is one key/value pair of the device-local store.
type LocalEntry struct {
	Key       string    `gorm:"primaryKey;size:512" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LocalEntry) TableName() string {
	return "local_storage"
}
