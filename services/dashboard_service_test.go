package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/store"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestBuildOverviewSeed(t *testing.T) {
	snap := store.New(store.DefaultSeed(fixedNow)).Snapshot()

	ov := BuildOverview(snap, "1")
	assert.Equal(t, 3, ov.TotalOrders)
	assert.Equal(t, 276.0, ov.TotalRevenue)
	assert.Equal(t, 25.0, ov.WasteCost)
	assert.Equal(t, 2, ov.ActiveCustomers)
	assert.Equal(t, 2, ov.MenuItems)
	assert.Equal(t, 2, ov.AvailableItems)
	assert.Equal(t, 1, ov.OrdersByStatus[models.OrderPending])
	assert.Equal(t, 1, ov.OrdersByStatus[models.OrderPreparing])
	assert.Equal(t, 1, ov.OrdersByStatus[models.OrderCompleted])
	assert.Equal(t, 0, ov.OrdersByStatus[models.OrderCancelled])
}

func TestBuildOverviewExcludesCancelledRevenue(t *testing.T) {
	st := store.New(store.DefaultSeed(fixedNow))
	st.UpdateOrderStatus("o1", models.OrderCancelled)

	ov := BuildOverview(st.Snapshot(), "1")
	assert.Equal(t, 156.0, ov.TotalRevenue)
	assert.Equal(t, 1, ov.OrdersByStatus[models.OrderCancelled])
}

func TestBuildOverviewOtherRestaurant(t *testing.T) {
	snap := store.New(store.DefaultSeed(fixedNow)).Snapshot()

	ov := BuildOverview(snap, "2")
	assert.Equal(t, 0, ov.TotalOrders)
	assert.Equal(t, 0.0, ov.WasteCost)
	assert.Equal(t, 1, ov.MenuItems)
}

func TestBuildOrderBoard(t *testing.T) {
	st := store.New(store.DefaultSeed(fixedNow))
	st.AddOrder(models.NewOrder("o4", "1", "Dana", nil, fixedNow.Add(time.Minute)))
	st.AddOrder(models.NewOrder("x1", "2", "Other", nil, fixedNow))

	board := BuildOrderBoard(st.Snapshot(), "1")
	require.Len(t, board.Pending, 2)
	assert.Equal(t, "o4", board.Pending[0].ID)
	assert.Equal(t, "o1", board.Pending[1].ID)
	require.Len(t, board.Preparing, 1)
	assert.Equal(t, "o2", board.Preparing[0].ID)
	require.Len(t, board.Completed, 1)
	assert.NotNil(t, board.Cancelled)
	assert.Empty(t, board.Cancelled)
}

func TestRestaurantFiltersNeverNil(t *testing.T) {
	snap := store.New(store.Seed{}).Snapshot()
	assert.NotNil(t, RestaurantOrders(snap, "1"))
	assert.NotNil(t, RestaurantMenu(snap, "1"))
	assert.NotNil(t, RestaurantWaste(snap, "1"))
	assert.NotNil(t, RestaurantCustomers(snap, "1"))
}

func TestRestaurantSnapshotHidesOtherRestaurants(t *testing.T) {
	st := store.New(store.DefaultSeed(fixedNow))
	st.SelectRestaurant("2")
	st.AddCustomer(models.Customer{ID: "c3", RestaurantID: "2", Name: "Zara"})

	snap := RestaurantSnapshot(st.Snapshot(), "2")
	assert.Len(t, snap.Restaurants, 3)
	assert.Len(t, snap.Categories, 4)
	require.Len(t, snap.MenuItems, 1)
	assert.Equal(t, "m3", snap.MenuItems[0].ID)
	assert.Empty(t, snap.Orders)
	assert.NotNil(t, snap.Orders)
	assert.Empty(t, snap.WasteLogs)
	require.Len(t, snap.Customers, 1)
	assert.Equal(t, "c3", snap.Customers[0].ID)
	assert.Equal(t, "2", snap.CurrentRestaurantID())
}
