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

type CustomerController struct {
	Store *store.Store
	Now   func() time.Time
	NewID func() string
}

func NewCustomerController(st *store.Store) *CustomerController {
	return &CustomerController{Store: st, Now: time.Now, NewID: uuid.NewString}
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	utils.RespondJSON(c, http.StatusOK, "List of customers", services.RestaurantCustomers(cc.Store.Snapshot(), restaurantID))
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name       string  `json:"name" binding:"required"`
		Phone      string  `json:"phone"`
		Email      string  `json:"email" binding:"omitempty,email"`
		TotalSpent float64 `json:"total_spent" binding:"gte=0"`
		Visits     int     `json:"visits" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		ID:           cc.NewID(),
		RestaurantID: c.GetString(middlewares.ContextRestaurantID),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		TotalSpent:   req.TotalSpent,
		Visits:       req.Visits,
		LastVisit:    cc.Now(),
	}
	cc.Store.AddCustomer(customer)

	utils.InfoLogger.Printf("New customer %s added to restaurant %s", customer.ID, customer.RestaurantID)

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}
