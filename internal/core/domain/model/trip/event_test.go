package trip_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	id := kernel.NewUUID()
	tripID := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates valid event", func(t *testing.T) {
		event, err := trip.NewEvent(id, tripID, createdAt, trip.EventCheckpointPassed, "Aurora Gate")

		require.NoError(t, err)
		assert.True(t, event.ID().IsEqual(id))
		assert.True(t, event.TripID().IsEqual(tripID))
		assert.Equal(t, createdAt, event.CreatedAt())
		assert.Equal(t, trip.EventCheckpointPassed, event.Type())
		assert.Equal(t, "Aurora Gate", event.Payload())
	})

	t.Run("normalizes timestamp to UTC", func(t *testing.T) {
		local := time.FixedZone("UTC+3", 3*60*60)
		event, err := trip.NewEvent(id, tripID, createdAt.In(local), trip.EventTripStarted, "")

		require.NoError(t, err)
		assert.Equal(t, time.UTC, event.CreatedAt().Location())
		assert.True(t, event.CreatedAt().Equal(createdAt))
	})

	t.Run("rejects zero event id", func(t *testing.T) {
		_, err := trip.NewEvent(kernel.UUID{}, tripID, createdAt, trip.EventTripStarted, "")
		require.Error(t, err)
	})

	t.Run("rejects zero trip id", func(t *testing.T) {
		_, err := trip.NewEvent(id, kernel.UUID{}, createdAt, trip.EventTripStarted, "")
		require.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := trip.NewEvent(id, tripID, createdAt, trip.EventTypeUnknown, "")
		require.Error(t, err)
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := trip.NewEvent(id, tripID, time.Time{}, trip.EventTripStarted, "")
		require.Error(t, err)
	})
}

func TestEventTypeFromString(t *testing.T) {
	for _, eventType := range []trip.EventType{
		trip.EventTripStarted,
		trip.EventTripCompleted,
		trip.EventCheckpointPassed,
		trip.EventAccident,
	} {
		parsed, err := trip.EventTypeFromString(eventType.String())
		require.NoError(t, err)
		assert.Equal(t, eventType, parsed)
	}

	_, err := trip.EventTypeFromString("WarpJump")
	require.Error(t, err)
}
