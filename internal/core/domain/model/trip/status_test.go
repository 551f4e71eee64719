package trip_test

import (
	"testing"

	"dispatch/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	testCases := []struct {
		name      string
		status    trip.Status
		eventType trip.EventType
		want      trip.Status
		legal     bool
	}{
		{"planned accepts start", trip.StatusPlanned, trip.EventTripStarted, trip.StatusInProgress, true},
		{"planned rejects completion", trip.StatusPlanned, trip.EventTripCompleted, 0, false},
		{"planned rejects checkpoint", trip.StatusPlanned, trip.EventCheckpointPassed, 0, false},
		{"planned rejects accident", trip.StatusPlanned, trip.EventAccident, 0, false},
		{"in progress rejects start", trip.StatusInProgress, trip.EventTripStarted, 0, false},
		{"in progress accepts completion", trip.StatusInProgress, trip.EventTripCompleted, trip.StatusFinished, true},
		{"in progress accepts checkpoint", trip.StatusInProgress, trip.EventCheckpointPassed, trip.StatusInProgress, true},
		{"in progress accepts accident", trip.StatusInProgress, trip.EventAccident, trip.StatusInProgress, true},
		{"finished rejects start", trip.StatusFinished, trip.EventTripStarted, 0, false},
		{"finished rejects completion", trip.StatusFinished, trip.EventTripCompleted, 0, false},
		{"finished rejects checkpoint", trip.StatusFinished, trip.EventCheckpointPassed, 0, false},
		{"finished rejects accident", trip.StatusFinished, trip.EventAccident, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, domainErr := tc.status.Next(tc.eventType)

			if tc.legal {
				require.Nil(t, domainErr)
				assert.Equal(t, tc.want, next)
				return
			}

			require.NotNil(t, domainErr)
			assert.Equal(t, trip.CodeInvalidEvent, domainErr.Code)
			assert.Contains(t, domainErr.Message, tc.eventType.String())
			assert.Contains(t, domainErr.Message, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, trip.StatusPlanned.Validate())
	require.NoError(t, trip.StatusInProgress.Validate())
	require.NoError(t, trip.StatusFinished.Validate())
	require.Error(t, trip.StatusUnknown.Validate())
	require.Error(t, trip.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Planned", trip.StatusPlanned.String())
	assert.Equal(t, "InProgress", trip.StatusInProgress.String())
	assert.Equal(t, "Finished", trip.StatusFinished.String())
	assert.Equal(t, "Unknown", trip.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	for _, status := range []trip.Status{trip.StatusPlanned, trip.StatusInProgress, trip.StatusFinished} {
		parsed, err := trip.StatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := trip.StatusFromString("Cancelled")
	require.Error(t, err)
}
