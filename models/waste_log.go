package models

import "time"

// WasteLog records discarded stock. Reason is a free-form label.
type WasteLog struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	ItemName     string    `json:"item_name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Cost         float64   `json:"cost"`
	Date         time.Time `json:"date"`
	Reason       string    `json:"reason"`
}
