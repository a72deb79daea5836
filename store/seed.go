package store

import (
	"time"

	"github.com/yeremiapane/restaurant-dashboard/models"
)

// Seed is the initial content of a Store.
type Seed struct {
	Restaurants []models.Restaurant
	Categories  []models.Category
	MenuItems   []models.MenuItem
	Orders      []models.Order
	WasteLogs   []models.WasteLog
	Customers   []models.Customer
}

// NewDemo builds a store loaded with DefaultSeed(time.Now()).
func NewDemo() *Store {
	return New(DefaultSeed(time.Now()))
}

// DefaultSeed returns the demo dataset with timestamps relative to now.
func DefaultSeed(now time.Time) Seed {
	return Seed{
		Restaurants: []models.Restaurant{
			{
				ID:         "1",
				Name:       "Mystique Restaurants",
				Logo:       "https://images.unsplash.com/photo-1514362545857-3bc16549766b?w=100&h=100&fit=crop",
				ThemeColor: "#C8A951",
				Category:   "Premium Dining",
				Website:    "mystiquerestaurants.com",
			},
			{
				ID:         "2",
				Name:       "Baranh",
				Logo:       "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=100&h=100&fit=crop",
				ThemeColor: "#1E3A8A",
				Category:   "Fine Dining",
				Website:    "baranh.pk",
			},
			{
				ID:         "3",
				Name:       "Haveli",
				Logo:       "https://images.unsplash.com/photo-1585937421612-70a008356f36?w=100&h=100&fit=crop",
				ThemeColor: "#E63946",
				Category:   "Desi Cuisine",
				Website:    "haveli.com.pk",
			},
		},
		Categories: []models.Category{
			{ID: "cat1", Name: "Starters"},
			{ID: "cat2", Name: "Main Course"},
			{ID: "cat3", Name: "Beverages"},
			{ID: "cat4", Name: "Desserts"},
		},
		MenuItems: []models.MenuItem{
			{ID: "m1", RestaurantID: "1", CategoryID: "cat2", Name: "Gold Leaf Steak", Price: 120, IsAvailable: true, Description: "Premium cut with 24k gold leaf", Image: "https://images.unsplash.com/photo-1546241072-48010ad2862c?w=400"},
			{ID: "m2", RestaurantID: "1", CategoryID: "cat1", Name: "Truffle Fries", Price: 18, IsAvailable: true, Description: "Hand-cut fries with black truffle oil", Image: "https://images.unsplash.com/photo-1573080496987-a199f8cd6213?w=400"},
			{ID: "m3", RestaurantID: "2", CategoryID: "cat2", Name: "Lobster Risotto", Price: 45, IsAvailable: true, Description: "Creamy arborio rice with fresh lobster", Image: "https://images.unsplash.com/photo-1534422298391-e4f8c172dddb?w=400"},
			{ID: "m4", RestaurantID: "3", CategoryID: "cat2", Name: "Chicken Karahi", Price: 25, IsAvailable: true, Description: "Traditional spicy chicken stew", Image: "https://images.unsplash.com/photo-1603496987351-f12a3e4d529c?w=400"},
		},
		Orders: []models.Order{
			{ID: "o1", RestaurantID: "1", CustomerName: "John Doe", Items: []models.OrderLine{{ItemID: "m1", Name: "Gold Leaf Steak", Quantity: 1, Price: 120}}, Total: 120, Status: models.OrderPending, CreatedAt: now},
			{ID: "o2", RestaurantID: "1", CustomerName: "Alice Smith", Items: []models.OrderLine{{ItemID: "m2", Name: "Truffle Fries", Quantity: 2, Price: 18}}, Total: 36, Status: models.OrderPreparing, CreatedAt: now.Add(-time.Hour)},
			{ID: "o3", RestaurantID: "1", CustomerName: "Bob Brown", Items: []models.OrderLine{{ItemID: "m1", Name: "Gold Leaf Steak", Quantity: 1, Price: 120}}, Total: 120, Status: models.OrderCompleted, CreatedAt: now.Add(-24 * time.Hour)},
		},
		WasteLogs: []models.WasteLog{
			{ID: "w1", RestaurantID: "1", ItemName: "Tomatoes", Quantity: 2, Unit: "kg", Cost: 15, Date: now, Reason: "Spoiled"},
			{ID: "w2", RestaurantID: "1", ItemName: "Lettuce", Quantity: 5, Unit: "heads", Cost: 10, Date: now, Reason: "Wilted"},
		},
		Customers: []models.Customer{
			{ID: "c1", RestaurantID: "1", Name: "Sarah Connor", Phone: "+1234567890", Email: "sarah@example.com", TotalSpent: 450, Visits: 12, LastVisit: now},
			{ID: "c2", RestaurantID: "1", Name: "Kyle Reese", Phone: "+9876543210", Email: "kyle@example.com", TotalSpent: 120, Visits: 3, LastVisit: now.Add(-5 * 24 * time.Hour)},
		},
	}
}
