package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

// RestaurantController serves the landing page data.
type RestaurantController struct {
	Store *store.Store
}

func NewRestaurantController(st *store.Store) *RestaurantController {
	return &RestaurantController{Store: st}
}

func (rc *RestaurantController) GetRestaurants(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", rc.Store.Snapshot().Restaurants)
}

func (rc *RestaurantController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", rc.Store.Snapshot().Categories)
}
