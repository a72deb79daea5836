package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/config"
	"github.com/yeremiapane/restaurant-dashboard/database"
	"github.com/yeremiapane/restaurant-dashboard/live"
	"github.com/yeremiapane/restaurant-dashboard/router"
	"github.com/yeremiapane/restaurant-dashboard/services"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger()
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLoggerWithLevel(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.NewDemo()

	journalDB, err := database.OpenJournal(database.MemoryDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open change journal: %v", err)
	}
	journal := services.NewChangeJournal(journalDB)
	journal.Attach(st)

	hub := live.NewHub()
	hub.Attach(st)

	digest := services.NewDigest(st, cfg.DigestSchedule)
	if err := digest.Start(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to start digest: %v", err)
	}
	defer digest.Stop()

	r, err := router.SetupRouter(router.Options{
		Store:          st,
		Journal:        journal,
		Hub:            hub,
		Tokens:         utils.NewSessionTokens(cfg.JWTSecret, cfg.SessionTTL),
		AllowedOrigins: cfg.AllowedOrigins,
		DemoPassword:   cfg.DemoPassword,
		RateLimitRPS:   cfg.RateLimitRPS,
	})
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Errorf("Server shutdown: %v", err)
	}
	utils.InfoLogger.Println("Server stopped")
}
