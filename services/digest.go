package services

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

// Digest periodically logs each restaurant's overview.
type Digest struct {
	Store    *store.Store
	Schedule string
	cron     *cron.Cron
}

func NewDigest(st *store.Store, schedule string) *Digest {
	return &Digest{Store: st, Schedule: schedule}
}

// Start schedules the digest. An empty schedule disables it.
func (d *Digest) Start() error {
	if d.Schedule == "" {
		utils.InfoLogger.Println("Digest scheduler disabled")
		return nil
	}

	d.cron = cron.New()
	if _, err := d.cron.AddFunc(d.Schedule, func() { d.Run() }); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", d.Schedule, err)
	}
	d.cron.Start()
	utils.InfoLogger.Printf("Digest scheduler started (%s)", d.Schedule)
	return nil
}

// Stop waits for a running digest to finish.
func (d *Digest) Stop() {
	if d.cron == nil {
		return
	}
	<-d.cron.Stop().Done()
}

// Run logs one line per restaurant and returns the overviews it logged.
func (d *Digest) Run() []Overview {
	snap := d.Store.Snapshot()
	overviews := make([]Overview, 0, len(snap.Restaurants))

	for _, r := range snap.Restaurants {
		ov := BuildOverview(snap, r.ID)
		overviews = append(overviews, ov)

		utils.InfoLogger.WithFields(logrus.Fields{
			"restaurant": r.Name,
			"orders":     ov.TotalOrders,
			"pending":    ov.OrdersByStatus[models.OrderPending],
			"revenue":    utils.FormatUSD(ov.TotalRevenue),
			"waste_cost": utils.FormatUSD(ov.WasteCost),
			"customers":  ov.ActiveCustomers,
		}).Info("Dashboard digest")
	}
	return overviews
}
