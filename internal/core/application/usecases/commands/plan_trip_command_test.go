package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanTripCommand(t *testing.T) {
	routeID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	cmd, err := commands.NewPlanTripCommand(routeID, driverID, vehicleID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.RouteID().IsEqual(routeID))
	assert.True(t, cmd.DriverID().IsEqual(driverID))
	assert.True(t, cmd.VehicleID().IsEqual(vehicleID))
}

func TestNewPlanTripCommand_RejectsInvalidIdentities(t *testing.T) {
	valid := kernel.NewUUID()

	_, err := commands.NewPlanTripCommand(kernel.UUID{}, valid, valid)
	require.Error(t, err)

	_, err = commands.NewPlanTripCommand(valid, kernel.UUID{}, valid)
	require.Error(t, err)

	_, err = commands.NewPlanTripCommand(valid, valid, kernel.UUID{})
	require.Error(t, err)
}

func TestPlanTripCommand_ValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.PlanTripCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlanTripCommandIsNotConstructed)
}
