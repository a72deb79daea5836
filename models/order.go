package models

import (
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every legal status in board order.
var OrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderCompleted, OrderCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo follows pending -> preparing -> completed, with cancellation
// allowed from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.Valid() {
		return false
	}
	switch next {
	case OrderCancelled:
		return true
	case OrderPreparing:
		return s == OrderPending
	case OrderCompleted:
		return s == OrderPreparing
	}
	return false
}

// OrderLine is a copy of a menu item taken when the order was placed.
type OrderLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	CustomerName string      `json:"customer_name"`
	Items        []OrderLine `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderTotal sums price*quantity over lines.
func OrderTotal(lines []OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// NewOrder builds a pending order. Total is fixed here and never recomputed.
func NewOrder(id, restaurantID, customerName string, lines []OrderLine, createdAt time.Time) Order {
	items := make([]OrderLine, len(lines))
	copy(items, lines)
	return Order{
		ID:           id,
		RestaurantID: restaurantID,
		CustomerName: customerName,
		Items:        items,
		Total:        OrderTotal(items),
		Status:       OrderPending,
		CreatedAt:    createdAt,
	}
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	items := make([]OrderLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
