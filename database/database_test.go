package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-dashboard/models"
)

func TestOpenJournalMigratesSchema(t *testing.T) {
	db, err := OpenJournal(MemoryDSN)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Change{}))

	change := models.Change{Kind: "order_created", EntityID: "o1", RestaurantID: "1", ChangedAt: time.Now()}
	require.NoError(t, db.Create(&change).Error)
	assert.NotZero(t, change.ID)

	var count int64
	require.NoError(t, db.Model(&models.Change{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOpenJournalInstancesAreIsolated(t *testing.T) {
	first, err := OpenJournal(MemoryDSN)
	require.NoError(t, err)
	second, err := OpenJournal(MemoryDSN)
	require.NoError(t, err)

	require.NoError(t, first.Create(&models.Change{Kind: "waste_logged", ChangedAt: time.Now()}).Error)

	var count int64
	require.NoError(t, second.Model(&models.Change{}).Count(&count).Error)
	assert.Zero(t, count)
}
