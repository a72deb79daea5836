package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/navigation"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

const (
	ContextRestaurantID = "restaurant_id"
	ContextEmail        = "email"
)

var (
	ErrSessionMissing  = errors.New("session token missing")
	ErrNoSelection     = errors.New("no restaurant selected")
	ErrSessionMismatch = errors.New("session belongs to another restaurant")
)

// RequireSession guards the dashboard. The token may come from the
// Authorization header or, for WebSocket upgrades, the token query parameter.
// A valid token is not enough: its restaurant must still be the store's
// current selection, so logging out closes every dashboard session.
// Rejected requests are pointed at the login location.
func RequireSession(st *store.Store, tokens *utils.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			reject(c, ErrSessionMissing)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			reject(c, err)
			return
		}

		current := st.CurrentRestaurantID()
		switch navigation.Resolve(navigation.Dashboard, current != "") {
		case navigation.Dashboard:
		case navigation.Login, navigation.Landing:
			reject(c, ErrNoSelection)
			return
		}
		if claims.RestaurantID != current {
			reject(c, ErrSessionMismatch)
			return
		}

		c.Set(ContextRestaurantID, claims.RestaurantID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func reject(c *gin.Context, err error) {
	utils.RespondRedirect(c, http.StatusUnauthorized, err, navigation.Login.Path())
	c.Abort()
}
