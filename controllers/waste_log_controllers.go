package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/services"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

type WasteLogController struct {
	Store *store.Store
	Now   func() time.Time
	NewID func() string
}

func NewWasteLogController(st *store.Store) *WasteLogController {
	return &WasteLogController{Store: st, Now: time.Now, NewID: uuid.NewString}
}

func (wc *WasteLogController) GetWasteLogs(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	utils.RespondJSON(c, http.StatusOK, "Waste logs", services.RestaurantWaste(wc.Store.Snapshot(), restaurantID))
}

// CreateWasteLog -> unit defaults to kg, reason to Spoiled
func (wc *WasteLogController) CreateWasteLog(c *gin.Context) {
	var req struct {
		ItemName string   `json:"item_name" binding:"required"`
		Quantity *float64 `json:"quantity" binding:"required,gt=0"`
		Unit     string   `json:"unit"`
		Cost     *float64 `json:"cost" binding:"required,gte=0"`
		Reason   string   `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry := models.WasteLog{
		ID:           wc.NewID(),
		RestaurantID: c.GetString(middlewares.ContextRestaurantID),
		ItemName:     req.ItemName,
		Quantity:     *req.Quantity,
		Unit:         "kg",
		Cost:         *req.Cost,
		Date:         wc.Now(),
		Reason:       "Spoiled",
	}
	if req.Unit != "" {
		entry.Unit = req.Unit
	}
	if req.Reason != "" {
		entry.Reason = req.Reason
	}

	wc.Store.AddWasteLog(entry)

	utils.RespondJSON(c, http.StatusCreated, "Waste log created", entry)
}
