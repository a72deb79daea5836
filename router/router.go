package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/controllers"
	"github.com/yeremiapane/restaurant-dashboard/live"
	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"github.com/yeremiapane/restaurant-dashboard/services"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

type Options struct {
	Store          *store.Store
	Journal        *services.ChangeJournal
	Hub            *live.Hub
	Tokens         *utils.SessionTokens
	AllowedOrigins []string
	DemoPassword   string
	RateLimitRPS   int
}

func SetupRouter(opts Options) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.AllowedOrigins))
	r.Use(middlewares.LoggerMiddleware())
	if opts.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimitRPS).RateLimit())
	}

	sessionCtrl, err := controllers.NewSessionController(opts.Store, opts.Tokens, opts.DemoPassword)
	if err != nil {
		return nil, err
	}
	restaurantCtrl := controllers.NewRestaurantController(opts.Store)
	orderCtrl := controllers.NewOrderController(opts.Store)
	menuCtrl := controllers.NewMenuController(opts.Store)
	wasteCtrl := controllers.NewWasteLogController(opts.Store)
	customerCtrl := controllers.NewCustomerController(opts.Store)
	dashboardCtrl := controllers.NewDashboardController(opts.Store, opts.Journal)
	liveCtrl := controllers.NewLiveController(opts.Hub, opts.AllowedOrigins)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// landing page
	r.GET("/restaurants", restaurantCtrl.GetRestaurants)
	r.GET("/categories", restaurantCtrl.GetCategories)
	r.GET("/navigate", sessionCtrl.Navigate)

	r.POST("/login", middlewares.NewStrictRateLimiter().RateLimit(), sessionCtrl.Login)
	r.POST("/logout", sessionCtrl.Logout)

	// ----------------------------------------------------------------
	//                      DASHBOARD ROUTES
	// ----------------------------------------------------------------
	guard := middlewares.RequireSession(opts.Store, opts.Tokens)

	dash := r.Group("/dashboard")
	dash.Use(guard)

	dash.GET("/snapshot", dashboardCtrl.GetSnapshot)
	dash.GET("/overview", dashboardCtrl.GetOverview)
	dash.GET("/changes", dashboardCtrl.GetChanges)
	dash.GET("/export", dashboardCtrl.ExportWorkbook)

	// ORDERS
	dash.GET("/orders", orderCtrl.GetOrderBoard)
	dash.POST("/orders", orderCtrl.CreateOrder)
	dash.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)

	// MENU
	dash.GET("/menu", menuCtrl.GetMenu)
	dash.POST("/menu", menuCtrl.CreateMenuItem)
	dash.POST("/menu/:item_id/toggle", menuCtrl.ToggleAvailability)

	// WASTE
	dash.GET("/waste", wasteCtrl.GetWasteLogs)
	dash.POST("/waste", wasteCtrl.CreateWasteLog)

	// CUSTOMERS
	dash.GET("/customers", customerCtrl.GetCustomers)
	dash.POST("/customers", customerCtrl.CreateCustomer)

	// live feed, token passed as ?token=
	r.GET("/ws", guard, liveCtrl.Stream)

	return r, nil
}
