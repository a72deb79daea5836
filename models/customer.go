package models

import (
	"time"
)

type Customer struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	TotalSpent   float64   `json:"total_spent"`
	Visits       int       `json:"visits"`
	LastVisit    time.Time `json:"last_visit"`
}
