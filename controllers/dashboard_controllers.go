package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"github.com/yeremiapane/restaurant-dashboard/services"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardController struct {
	Store   *store.Store
	Journal *services.ChangeJournal
}

func NewDashboardController(st *store.Store, journal *services.ChangeJournal) *DashboardController {
	return &DashboardController{Store: st, Journal: journal}
}

// GetSnapshot returns the collections of the session restaurant plus the
// public restaurant and category lists.
func (dc *DashboardController) GetSnapshot(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	snap := services.RestaurantSnapshot(dc.Store.Snapshot(), restaurantID)
	utils.RespondJSON(c, http.StatusOK, "Store snapshot", snap)
}

func (dc *DashboardController) GetOverview(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)
	overview := services.BuildOverview(dc.Store.Snapshot(), restaurantID)
	utils.RespondJSON(c, http.StatusOK, "Dashboard overview", overview)
}

// GetChanges lists the journal for the session restaurant, newest first.
func (dc *DashboardController) GetChanges(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", c.Query("limit")))
		return
	}

	changes, err := dc.Journal.Recent(c.GetString(middlewares.ContextRestaurantID), limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recent changes", changes)
}

// ExportWorkbook -> xlsx with the orders and waste of the session restaurant
func (dc *DashboardController) ExportWorkbook(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)

	f, err := services.ExportWorkbook(dc.Store.Snapshot(), restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="restaurant-%s-report.xlsx"`, restaurantID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
