package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/navigation"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
	"golang.org/x/crypto/bcrypt"
)

// SessionController implements the login stub: choosing a restaurant opens
// its dashboard. Credentials are only checked when a demo password is set.
type SessionController struct {
	Store        *store.Store
	Tokens       *utils.SessionTokens
	passwordHash []byte
}

func NewSessionController(st *store.Store, tokens *utils.SessionTokens, demoPassword string) (*SessionController, error) {
	sc := &SessionController{Store: st, Tokens: tokens}
	if demoPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		sc.passwordHash = hashed
	}
	return sc, nil
}

// Login selects the requested restaurant and returns a session token for it.
func (sc *SessionController) Login(c *gin.Context) {
	var input struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		RestaurantID string `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if sc.passwordHash != nil {
		if err := bcrypt.CompareHashAndPassword(sc.passwordHash, []byte(input.Password)); err != nil {
			utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}
	}

	sc.Store.SelectRestaurant(input.RestaurantID)
	snap := sc.Store.Snapshot()
	if snap.CurrentRestaurantID() != input.RestaurantID {
		// the store cleared the selection
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	token, err := sc.Tokens.Generate(input.RestaurantID, input.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Dashboard opened for %s by %q", snap.CurrentRestaurant.Name, input.Email)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":      token,
		"restaurant": snap.CurrentRestaurant,
		"redirect":   navigation.Dashboard.Path(),
	})
}

// Logout clears the selection, which invalidates every dashboard session.
func (sc *SessionController) Logout(c *gin.Context) {
	sc.Store.SelectRestaurant("")
	utils.RespondJSON(c, http.StatusOK, "Logged out", gin.H{
		"redirect": navigation.Landing.Path(),
	})
}

// Navigate reports where a client asking for path would land.
func (sc *SessionController) Navigate(c *gin.Context) {
	requested := navigation.ParseLocation(c.DefaultQuery("path", "/"))
	resolved := navigation.Resolve(requested, sc.Store.CurrentRestaurantID() != "")

	utils.RespondJSON(c, http.StatusOK, "Navigation resolved", gin.H{
		"requested": requested,
		"location":  resolved,
		"path":      resolved.Path(),
	})
}
