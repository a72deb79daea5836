package services

import (
	"time"

	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
	"gorm.io/gorm"
)

// ChangeJournal records every store mutation as a models.Change row.
type ChangeJournal struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewChangeJournal(db *gorm.DB) *ChangeJournal {
	return &ChangeJournal{DB: db, Now: time.Now}
}

// Attach subscribes the journal to st and returns the unsubscribe function.
func (cj *ChangeJournal) Attach(st *store.Store) func() {
	return st.Subscribe(cj.Record)
}

// Record writes ev. Failures are logged and never reach the mutating caller.
func (cj *ChangeJournal) Record(ev store.Event) {
	_, restaurantID, _ := ev.Entity()
	change := models.Change{
		Kind:         string(ev.Kind),
		EntityID:     ev.EntityID,
		RestaurantID: restaurantID,
		ChangedAt:    cj.Now(),
	}
	if err := cj.DB.Create(&change).Error; err != nil {
		utils.ErrorLogger.Errorf("Error journaling %s %s: %v", ev.Kind, ev.EntityID, err)
	}
}

// Recent lists up to limit changes, newest first. Filtering by restaurant is
// skipped when restaurantID is empty.
func (cj *ChangeJournal) Recent(restaurantID string, limit int) ([]models.Change, error) {
	changes := []models.Change{}
	q := cj.DB.Order("id DESC")
	if restaurantID != "" {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&changes).Error; err != nil {
		return nil, err
	}
	return changes, nil
}
