package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travelmap/internal/usecase"
)

func TestActivityTracker_OverlappingOperations(t *testing.T) {
	tracker := usecase.NewActivityTracker(zap.NewNop())

	assert.False(t, tracker.State().Busy)

	tracker.Begin(usecase.ActivityLoad)
	tracker.Begin(usecase.ActivitySave)

	state := tracker.State()
	assert.True(t, state.Busy)
	assert.Equal(t, usecase.ActivitySave, state.Kind)
	assert.Equal(t, "Adding a new place to the map...", state.Message)

	// Still busy while one operation remains in flight.
	tracker.End()
	assert.True(t, tracker.State().Busy)

	tracker.End()
	assert.False(t, tracker.State().Busy)
	assert.Empty(t, tracker.State().Message)
}

func TestActivityTracker_ForceIdle(t *testing.T) {
	tracker := usecase.NewActivityTracker(zap.NewNop())

	tracker.Begin(usecase.ActivityGeocode)
	tracker.Begin(usecase.ActivityGeocode)
	tracker.ForceIdle()

	assert.False(t, tracker.State().Busy)

	// An unpaired End after a reset must not go negative.
	tracker.End()
	tracker.Begin(usecase.ActivityDelete)
	assert.True(t, tracker.State().Busy)
	tracker.End()
	assert.False(t, tracker.State().Busy)
}

func TestActivityTracker_SubscribeLatestState(t *testing.T) {
	tracker := usecase.NewActivityTracker(zap.NewNop())

	ch, cancel := tracker.Subscribe()
	defer cancel()

	assert.False(t, (<-ch).Busy)

	tracker.Begin(usecase.ActivityVisit)
	tracker.Begin(usecase.ActivityPlan)

	// Two states were emitted unread; only the latest survives.
	state := <-ch
	require.True(t, state.Busy)
	assert.Equal(t, usecase.ActivityPlan, state.Kind)
}
