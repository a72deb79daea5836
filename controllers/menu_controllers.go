package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/services"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

const (
	defaultCategoryID   = "cat1"
	defaultDescription  = "New delicious item added to the menu."
	defaultMenuImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400"
)

type MenuController struct {
	Store *store.Store
	NewID func() string
}

func NewMenuController(st *store.Store) *MenuController {
	return &MenuController{Store: st, NewID: uuid.NewString}
}

func (mc *MenuController) GetMenu(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	utils.RespondJSON(c, http.StatusOK, "Menu items", services.RestaurantMenu(mc.Store.Snapshot(), restaurantID))
}

// CreateMenuItem -> new items start available
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Price       *float64 `json:"price" binding:"required,gte=0"`
		CategoryID  string   `json:"category_id"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CategoryID == "" {
		req.CategoryID = defaultCategoryID
	}
	if _, ok := mc.Store.Snapshot().Category(req.CategoryID); !ok {
		utils.RespondError(c, http.StatusBadRequest, ErrUnknownCategory)
		return
	}
	if req.Description == "" {
		req.Description = defaultDescription
	}
	if req.Image == "" {
		req.Image = defaultMenuImageURL
	}

	item := models.MenuItem{
		ID:           mc.NewID(),
		RestaurantID: c.GetString(middlewares.ContextRestaurantID),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Price:        *req.Price,
		Image:        req.Image,
		IsAvailable:  true,
		Description:  req.Description,
	}
	mc.Store.AddMenuItem(item)

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

func (mc *MenuController) ToggleAvailability(c *gin.Context) {
	id := c.Param("item_id")
	item, ok := mc.Store.Snapshot().MenuItem(id)
	if !ok || item.RestaurantID != c.GetString(middlewares.ContextRestaurantID) {
		utils.RespondError(c, http.StatusNotFound, ErrMenuItemNotFound)
		return
	}

	mc.Store.ToggleItemAvailability(id)
	item, _ = mc.Store.Snapshot().MenuItem(id)

	utils.RespondJSON(c, http.StatusOK, "Menu item availability toggled", item)
}
