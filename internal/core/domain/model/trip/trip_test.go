package trip_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

func planTestTrip(t *testing.T) *trip.Trip {
	t.Helper()
	planned, err := trip.Plan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testCreatedAt)
	require.NoError(t, err)
	return planned
}

func makeEvent(t *testing.T, tripID kernel.UUID, eventType trip.EventType, payload string) trip.Event {
	t.Helper()
	event, err := trip.NewEvent(kernel.NewUUID(), tripID, time.Now().UTC(), eventType, payload)
	require.NoError(t, err)
	return event
}

func TestPlan(t *testing.T) {
	t.Run("creates planned trip with no events", func(t *testing.T) {
		id := kernel.NewUUID()
		routeID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()

		planned, err := trip.Plan(id, routeID, driverID, vehicleID, testCreatedAt)

		require.NoError(t, err)
		require.NoError(t, planned.Validate())
		assert.True(t, planned.ID().IsEqual(id))
		assert.True(t, planned.RouteID().IsEqual(routeID))
		assert.True(t, planned.DriverID().IsEqual(driverID))
		assert.True(t, planned.VehicleID().IsEqual(vehicleID))
		assert.Equal(t, trip.StatusPlanned, planned.Status())
		assert.Equal(t, testCreatedAt, planned.CreatedAt())
		assert.Empty(t, planned.Events())
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		_, err := trip.Plan(kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), testCreatedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tripId")
		assert.Contains(t, err.Error(), "routeId")
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := trip.Plan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Time{})
		require.Error(t, err)
	})
}

func TestTrip_Validate(t *testing.T) {
	var notConstructed trip.Trip
	require.ErrorIs(t, notConstructed.Validate(), trip.ErrTripIsNotConstructed)

	var nilTrip *trip.Trip
	require.ErrorIs(t, nilTrip.Validate(), trip.ErrTripIsNotConstructed)

	require.NoError(t, planTestTrip(t).Validate())
}

func TestTrip_AddEvent(t *testing.T) {
	t.Run("planned trip accepts start", func(t *testing.T) {
		planned := planTestTrip(t)
		event := makeEvent(t, planned.ID(), trip.EventTripStarted, "")

		started, domainErr := planned.AddEvent(event)

		require.Nil(t, domainErr)
		assert.Equal(t, trip.StatusInProgress, started.Status())
		require.Len(t, started.Events(), 1)
		assert.True(t, started.Events()[0].ID().IsEqual(event.ID()))
	})

	t.Run("planned trip rejects everything but start", func(t *testing.T) {
		planned := planTestTrip(t)
		for _, eventType := range []trip.EventType{
			trip.EventTripCompleted, trip.EventCheckpointPassed, trip.EventAccident,
		} {
			_, domainErr := planned.AddEvent(makeEvent(t, planned.ID(), eventType, ""))

			require.NotNil(t, domainErr)
			assert.Equal(t, trip.CodeInvalidEvent, domainErr.Code)
		}
	})

	t.Run("receiver is never mutated", func(t *testing.T) {
		planned := planTestTrip(t)

		started, domainErr := planned.AddEvent(makeEvent(t, planned.ID(), trip.EventTripStarted, ""))

		require.Nil(t, domainErr)
		assert.Equal(t, trip.StatusPlanned, planned.Status())
		assert.Empty(t, planned.Events())
		assert.Equal(t, trip.StatusInProgress, started.Status())
	})

	t.Run("events accumulate in admission order", func(t *testing.T) {
		current := planTestTrip(t)

		steps := []struct {
			eventType trip.EventType
			payload   string
		}{
			{trip.EventTripStarted, ""},
			{trip.EventCheckpointPassed, "Aurora Gate"},
			{trip.EventAccident, "minor scrape"},
			{trip.EventTripCompleted, ""},
		}
		for _, step := range steps {
			next, domainErr := current.AddEvent(makeEvent(t, current.ID(), step.eventType, step.payload))
			require.Nil(t, domainErr)
			current = next
		}

		assert.Equal(t, trip.StatusFinished, current.Status())
		events := current.Events()
		require.Len(t, events, 4)
		for i, step := range steps {
			assert.Equal(t, step.eventType, events[i].Type())
			assert.Equal(t, step.payload, events[i].Payload())
		}
	})

	t.Run("finished trip rejects every event and keeps history", func(t *testing.T) {
		current := planTestTrip(t)
		for _, eventType := range []trip.EventType{trip.EventTripStarted, trip.EventTripCompleted} {
			next, domainErr := current.AddEvent(makeEvent(t, current.ID(), eventType, ""))
			require.Nil(t, domainErr)
			current = next
		}
		require.Equal(t, trip.StatusFinished, current.Status())

		for _, eventType := range []trip.EventType{
			trip.EventTripStarted, trip.EventTripCompleted, trip.EventCheckpointPassed, trip.EventAccident,
		} {
			_, domainErr := current.AddEvent(makeEvent(t, current.ID(), eventType, ""))

			require.NotNil(t, domainErr)
			assert.Equal(t, trip.CodeInvalidEvent, domainErr.Code)
		}
		assert.Len(t, current.Events(), 2)
	})
}

func TestRestoreTrip(t *testing.T) {
	t.Run("rehydrates trip with history", func(t *testing.T) {
		id := kernel.NewUUID()
		event := makeEvent(t, id, trip.EventTripStarted, "")

		restored, err := trip.RestoreTrip(
			id, testCreatedAt,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			trip.StatusInProgress,
			[]trip.Event{event},
		)

		require.NoError(t, err)
		assert.Equal(t, trip.StatusInProgress, restored.Status())
		require.Len(t, restored.Events(), 1)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := trip.RestoreTrip(
			kernel.NewUUID(), testCreatedAt,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			trip.StatusUnknown,
			nil,
		)

		require.Error(t, err)
	})
}
