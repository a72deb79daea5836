package store

import (
	"github.com/yeremiapane/restaurant-dashboard/models"
)

// Snapshot is an immutable copy of the store at one instant. Collections are
// never nil.
type Snapshot struct {
	Restaurants       []models.Restaurant `json:"restaurants"`
	Categories        []models.Category   `json:"categories"`
	MenuItems         []models.MenuItem   `json:"menu_items"`
	Orders            []models.Order      `json:"orders"`
	WasteLogs         []models.WasteLog   `json:"waste_logs"`
	Customers         []models.Customer   `json:"customers"`
	CurrentRestaurant *models.Restaurant  `json:"current_restaurant"`
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// CurrentRestaurantID returns "" when nothing is selected.
func (s *Store) CurrentRestaurantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Restaurants: append([]models.Restaurant{}, s.restaurants...),
		Categories:  append([]models.Category{}, s.categories...),
		MenuItems:   append([]models.MenuItem{}, s.menuItems...),
		Orders:      cloneOrders(s.orders),
		WasteLogs:   append([]models.WasteLog{}, s.wasteLogs...),
		Customers:   append([]models.Customer{}, s.customers...),
	}
	if s.currentID != "" {
		for _, r := range s.restaurants {
			if r.ID == s.currentID {
				current := r
				snap.CurrentRestaurant = &current
				break
			}
		}
	}
	return snap
}

func (snap Snapshot) HasSelection() bool {
	return snap.CurrentRestaurant != nil
}

// CurrentRestaurantID returns "" when nothing is selected.
func (snap Snapshot) CurrentRestaurantID() string {
	if snap.CurrentRestaurant == nil {
		return ""
	}
	return snap.CurrentRestaurant.ID
}

func (snap Snapshot) Restaurant(id string) (models.Restaurant, bool) {
	for _, r := range snap.Restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

func (snap Snapshot) Category(id string) (models.Category, bool) {
	for _, c := range snap.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (snap Snapshot) MenuItem(id string) (models.MenuItem, bool) {
	for _, m := range snap.MenuItems {
		if m.ID == id {
			return m, true
		}
	}
	return models.MenuItem{}, false
}

func (snap Snapshot) Order(id string) (models.Order, bool) {
	for _, o := range snap.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}
