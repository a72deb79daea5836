package models

import (
	"time"
)

// Change is one journaled store mutation.
type Change struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Kind         string    `gorm:"type:varchar(50);not null;index:idx_kind" json:"kind"`
	EntityID     string    `gorm:"type:varchar(64);index" json:"entity_id"`
	RestaurantID string    `gorm:"type:varchar(64);index" json:"restaurant_id"`
	ChangedAt    time.Time `gorm:"not null" json:"changed_at"`
}
