package services

import (
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/store"
)

// Overview is the dashboard's headline figures for one restaurant.
type Overview struct {
	RestaurantID    string                     `json:"restaurant_id"`
	TotalOrders     int                        `json:"total_orders"`
	TotalRevenue    float64                    `json:"total_revenue"`
	WasteCost       float64                    `json:"waste_cost"`
	ActiveCustomers int                        `json:"active_customers"`
	MenuItems       int                        `json:"menu_items"`
	AvailableItems  int                        `json:"available_items"`
	OrdersByStatus  map[models.OrderStatus]int `json:"orders_by_status"`
}

// OrderBoard groups orders by status, newest first within each column.
type OrderBoard struct {
	Pending   []models.Order `json:"pending"`
	Preparing []models.Order `json:"preparing"`
	Completed []models.Order `json:"completed"`
	Cancelled []models.Order `json:"cancelled"`
}

// BuildOverview derives the overview from snap. Cancelled orders do not count
// towards revenue.
func BuildOverview(snap store.Snapshot, restaurantID string) Overview {
	ov := Overview{
		RestaurantID:   restaurantID,
		OrdersByStatus: make(map[models.OrderStatus]int, len(models.OrderStatuses)),
	}
	for _, s := range models.OrderStatuses {
		ov.OrdersByStatus[s] = 0
	}

	for _, o := range RestaurantOrders(snap, restaurantID) {
		ov.TotalOrders++
		ov.OrdersByStatus[o.Status]++
		if o.Status != models.OrderCancelled {
			ov.TotalRevenue += o.Total
		}
	}
	for _, w := range RestaurantWaste(snap, restaurantID) {
		ov.WasteCost += w.Cost
	}
	ov.ActiveCustomers = len(RestaurantCustomers(snap, restaurantID))
	for _, m := range RestaurantMenu(snap, restaurantID) {
		ov.MenuItems++
		if m.IsAvailable {
			ov.AvailableItems++
		}
	}
	return ov
}

func BuildOrderBoard(snap store.Snapshot, restaurantID string) OrderBoard {
	board := OrderBoard{
		Pending:   []models.Order{},
		Preparing: []models.Order{},
		Completed: []models.Order{},
		Cancelled: []models.Order{},
	}
	for _, o := range RestaurantOrders(snap, restaurantID) {
		switch o.Status {
		case models.OrderPending:
			board.Pending = append(board.Pending, o)
		case models.OrderPreparing:
			board.Preparing = append(board.Preparing, o)
		case models.OrderCompleted:
			board.Completed = append(board.Completed, o)
		case models.OrderCancelled:
			board.Cancelled = append(board.Cancelled, o)
		}
	}
	return board
}

func RestaurantOrders(snap store.Snapshot, restaurantID string) []models.Order {
	out := []models.Order{}
	for _, o := range snap.Orders {
		if o.RestaurantID == restaurantID {
			out = append(out, o)
		}
	}
	return out
}

func RestaurantMenu(snap store.Snapshot, restaurantID string) []models.MenuItem {
	out := []models.MenuItem{}
	for _, m := range snap.MenuItems {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out
}

func RestaurantWaste(snap store.Snapshot, restaurantID string) []models.WasteLog {
	out := []models.WasteLog{}
	for _, w := range snap.WasteLogs {
		if w.RestaurantID == restaurantID {
			out = append(out, w)
		}
	}
	return out
}

func RestaurantCustomers(snap store.Snapshot, restaurantID string) []models.Customer {
	out := []models.Customer{}
	for _, c := range snap.Customers {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out
}

// RestaurantSnapshot narrows snap to what one restaurant's dashboard may see.
// Restaurants and categories are public landing data and stay whole.
func RestaurantSnapshot(snap store.Snapshot, restaurantID string) store.Snapshot {
	return store.Snapshot{
		Restaurants:       snap.Restaurants,
		Categories:        snap.Categories,
		MenuItems:         RestaurantMenu(snap, restaurantID),
		Orders:            RestaurantOrders(snap, restaurantID),
		WasteLogs:         RestaurantWaste(snap, restaurantID),
		Customers:         RestaurantCustomers(snap, restaurantID),
		CurrentRestaurant: snap.CurrentRestaurant,
	}
}
