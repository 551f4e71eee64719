package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessEventCommand(t *testing.T) {
	tripID := kernel.NewUUID()

	cmd, err := commands.NewProcessEventCommand(tripID, trip.EventCheckpointPassed, "Aurora Gate")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.TripID().IsEqual(tripID))
	assert.Equal(t, trip.EventCheckpointPassed, cmd.EventType())
	assert.Equal(t, "Aurora Gate", cmd.Payload())
}

func TestNewProcessEventCommand_AllowsEmptyPayload(t *testing.T) {
	cmd, err := commands.NewProcessEventCommand(kernel.NewUUID(), trip.EventTripStarted, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Payload())
}

func TestNewProcessEventCommand_RejectsInvalidInputs(t *testing.T) {
	_, err := commands.NewProcessEventCommand(kernel.UUID{}, trip.EventTripStarted, "")
	require.Error(t, err)

	_, err = commands.NewProcessEventCommand(kernel.NewUUID(), trip.EventTypeUnknown, "")
	require.Error(t, err)
}

func TestProcessEventCommand_ValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.ProcessEventCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrProcessEventCommandIsNotConstructed)
}
