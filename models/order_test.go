package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderComputesTotal(t *testing.T) {
	lines := []OrderLine{{ItemID: "m2", Name: "Truffle Fries", Quantity: 2, Price: 18}}
	order := NewOrder("o9", "1", "Alice", lines, time.Now())

	assert.Equal(t, 36.0, order.Total)
	assert.Equal(t, OrderPending, order.Status)

	// the order keeps its own copy of the lines
	lines[0].Price = 99
	assert.Equal(t, 18.0, order.Items[0].Price)
	assert.Equal(t, 36.0, order.Total)
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, OrderTotal(nil))
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderCompleted, false},
		{OrderPending, OrderPending, false},
		{OrderPreparing, OrderCompleted, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderPreparing, OrderPending, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCompleted, OrderPreparing, false},
		{OrderCancelled, OrderPending, false},
		{OrderPending, OrderStatus("served"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusValidity(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("").Valid())
	assert.True(t, OrderCompleted.IsTerminal())
	assert.True(t, OrderCancelled.IsTerminal())
	assert.False(t, OrderPreparing.IsTerminal())
}

func TestOrderClone(t *testing.T) {
	o := NewOrder("o1", "1", "John", []OrderLine{{ItemID: "m1", Quantity: 1, Price: 120}}, time.Now())
	c := o.Clone()
	c.Items[0].Quantity = 5
	assert.Equal(t, 1, o.Items[0].Quantity)
}
