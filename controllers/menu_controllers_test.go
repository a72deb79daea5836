package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-dashboard/controllers"
)

func setupMenuRouter(t *testing.T) *testEnv {
	env := newTestEnv(t)
	menuCtrl := controllers.NewMenuController(env.Store)
	menuCtrl.NewID = sequentialIDs("item-")

	env.Dash.GET("/menu", menuCtrl.GetMenu)
	env.Dash.POST("/menu", menuCtrl.CreateMenuItem)
	env.Dash.POST("/menu/:item_id/toggle", menuCtrl.ToggleAvailability)
	return env
}

func TestCreateMenuItemDefaults(t *testing.T) {
	env := setupMenuRouter(t)

	w, resp := env.do(t, http.MethodPost, "/dashboard/menu", map[string]interface{}{
		"name":  "Burger",
		"price": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "item-1", data["id"])
	assert.Equal(t, "1", data["restaurant_id"])
	assert.Equal(t, "cat1", data["category_id"])
	assert.Equal(t, true, data["is_available"])
	assert.NotEmpty(t, data["description"])
	assert.NotEmpty(t, data["image"])

	snap := env.Store.Snapshot()
	require.Len(t, snap.MenuItems, 5)
	assert.Equal(t, "item-1", snap.MenuItems[4].ID)
}

func TestCreateMenuItemValidation(t *testing.T) {
	env := setupMenuRouter(t)

	w, _ := env.do(t, http.MethodPost, "/dashboard/menu", map[string]interface{}{"name": "No price"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodPost, "/dashboard/menu", map[string]interface{}{"name": "Negative", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := env.do(t, http.MethodPost, "/dashboard/menu", map[string]interface{}{
		"name":        "Mystery",
		"price":       5,
		"category_id": "cat99",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.ErrUnknownCategory.Error(), resp["message"])

	// free items are allowed
	w, _ = env.do(t, http.MethodPost, "/dashboard/menu", map[string]interface{}{"name": "Water", "price": 0})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestToggleAvailability(t *testing.T) {
	env := setupMenuRouter(t)

	w, resp := env.do(t, http.MethodPost, "/dashboard/menu/m1/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["data"].(map[string]interface{})["is_available"])

	_, resp = env.do(t, http.MethodPost, "/dashboard/menu/m1/toggle", nil)
	assert.Equal(t, true, resp["data"].(map[string]interface{})["is_available"])

	// m3 belongs to another restaurant
	w, _ = env.do(t, http.MethodPost, "/dashboard/menu/m3/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	item, ok := env.Store.Snapshot().MenuItem("m3")
	require.True(t, ok)
	assert.True(t, item.IsAvailable)
}

func TestGetMenuOnlyListsSessionRestaurant(t *testing.T) {
	env := setupMenuRouter(t)

	w, resp := env.do(t, http.MethodGet, "/dashboard/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := resp["data"].([]interface{})
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "1", it.(map[string]interface{})["restaurant_id"])
	}
}
