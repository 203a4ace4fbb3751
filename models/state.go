package models

import "time"

// StateEntry is one row of the key-value table that backs session state.
type StateEntry struct {
	Key       string `gorm:"column:state_key;primaryKey;size:191"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (StateEntry) TableName() string {
	return "state_entries"
}
