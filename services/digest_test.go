package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

func TestDigestRun(t *testing.T) {
	utils.InitLogger()
	d := NewDigest(store.New(store.DefaultSeed(fixedNow)), "")

	overviews := d.Run()
	require.Len(t, overviews, 3)
	assert.Equal(t, "1", overviews[0].RestaurantID)
	assert.Equal(t, 3, overviews[0].TotalOrders)
}

func TestDigestStartDisabled(t *testing.T) {
	utils.InitLogger()
	d := NewDigest(store.New(store.Seed{}), "")
	assert.NoError(t, d.Start())
	d.Stop()
}

func TestDigestStartInvalidSchedule(t *testing.T) {
	utils.InitLogger()
	d := NewDigest(store.New(store.Seed{}), "every tuesday-ish")
	assert.Error(t, d.Start())
}

func TestDigestStartAndStop(t *testing.T) {
	utils.InitLogger()
	d := NewDigest(store.New(store.Seed{}), "@every 1h")
	require.NoError(t, d.Start())
	d.Stop()
}
