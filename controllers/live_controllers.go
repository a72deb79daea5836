package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-dashboard/live"
	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

type LiveController struct {
	Hub      *live.Hub
	upgrader websocket.Upgrader
}

// NewLiveController accepts upgrades only from origins (or the default
// frontend origin when origins is empty).
func NewLiveController(hub *live.Hub, origins []string) *LiveController {
	return &LiveController{
		Hub:      hub,
		upgrader: websocket.Upgrader{CheckOrigin: middlewares.CheckOrigin(origins)},
	}
}

// Stream -> WebSocket feed of the session restaurant's changes
func (lc *LiveController) Stream(c *gin.Context) {
	restaurantID := c.GetString(middlewares.ContextRestaurantID)

	ws, err := lc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("WebSocket upgrade failed: %v", err)
		return
	}

	lc.Hub.Register(ws, restaurantID)

	// the feed is one-way; reading only detects the disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	lc.Hub.Unregister(ws)
}
