package models

// MenuItem is a dish offered by one restaurant. Only IsAvailable changes after creation.
type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	CategoryID   string  `json:"category_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	Description  string  `json:"description"`
}
