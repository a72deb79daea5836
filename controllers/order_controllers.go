package controllers

import (
	"errors"
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

type OrderController struct {
	Store *store.Store
	Now   func() time.Time
	NewID func() string
}

func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{Store: st, Now: time.Now, NewID: uuid.NewString}
}

// GetOrderBoard -> orders of the session restaurant grouped by status
func (oc *OrderController) GetOrderBoard(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	board := services.BuildOrderBoard(oc.Store.Snapshot(), restaurantID)
	utils.RespondJSON(c, http.StatusOK, "Order board", board)
}

// CreateOrder snapshots the current menu prices into the order lines.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		ItemID   string `json:"item_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
	}
	var req struct {
		CustomerName string    `json:"customer_name" binding:"required"`
		Items        []itemReq `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurantID := c.GetString(middlewares.ContextRestaurantID)

	// lines are checked against the menu as it is when the order goes in
	order, err := oc.Store.PlaceOrder(func(snap store.Snapshot) (models.Order, error) {
		lines := make([]models.OrderLine, 0, len(req.Items))
		for _, it := range req.Items {
			item, ok := snap.MenuItem(it.ItemID)
			if !ok || item.RestaurantID != restaurantID {
				return models.Order{}, ErrMenuItemNotFound
			}
			if !item.IsAvailable {
				return models.Order{}, ErrItemUnavailable
			}
			lines = append(lines, models.OrderLine{
				ItemID:   item.ID,
				Name:     item.Name,
				Quantity: it.Quantity,
				Price:    item.Price,
			})
		}
		return models.NewOrder(oc.NewID(), restaurantID, req.CustomerName, lines, oc.Now()), nil
	})
	switch {
	case errors.Is(err, ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	case errors.Is(err, ErrItemUnavailable):
		utils.RespondError(c, http.StatusConflict, err)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New order %s for %s (total %s)", order.ID, order.CustomerName, utils.FormatUSD(order.Total))

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrderStatus only accepts forward transitions: pending -> preparing ->
// completed, or cancellation before a terminal status.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	next := models.OrderStatus(req.Status)
	if !next.Valid() {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	order, err := oc.Store.TransitionOrder(c.Param("order_id"), next, func(current models.Order) error {
		if current.RestaurantID != restaurantID {
			return ErrOrderNotFound
		}
		if !current.Status.CanTransitionTo(next) {
			return ErrIllegalTransition
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, store.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	case errors.Is(err, ErrIllegalTransition):
		utils.RespondError(c, http.StatusConflict, err)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
