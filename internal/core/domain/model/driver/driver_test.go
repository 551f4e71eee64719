package driver_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates free driver", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Nova", "Starlance")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Nova", d.FirstName())
		assert.Equal(t, "Starlance", d.LastName())
		assert.Equal(t, "Nova Starlance", d.FullName())
		assert.True(t, d.IsFree())
		assert.Nil(t, d.CurrentTripID())
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "")

		require.ErrorIs(t, err, driver.ErrFirstNameIsRequired)
		require.ErrorIs(t, err, driver.ErrLastNameIsRequired)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, "Nova", "Starlance")
		require.Error(t, err)
	})
}

func TestDriver_Assign(t *testing.T) {
	t.Run("reserves free driver", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Nova", "Starlance")
		tripID := kernel.NewUUID()

		require.NoError(t, d.Assign(tripID))

		assert.False(t, d.IsFree())
		require.NotNil(t, d.CurrentTripID())
		assert.True(t, d.CurrentTripID().IsEqual(tripID))
	})

	t.Run("rejects double booking", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Nova", "Starlance")
		first := kernel.NewUUID()
		require.NoError(t, d.Assign(first))

		err := d.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.True(t, d.CurrentTripID().IsEqual(first))
	})

	t.Run("rejects zero trip id", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Nova", "Starlance")
		require.Error(t, d.Assign(kernel.UUID{}))
		assert.True(t, d.IsFree())
	})
}

func TestDriver_Release(t *testing.T) {
	d, _ := driver.NewDriver(kernel.NewUUID(), "Nova", "Starlance")
	require.NoError(t, d.Assign(kernel.NewUUID()))

	d.Release()
	assert.True(t, d.IsFree())

	// Releasing again is harmless.
	d.Release()
	assert.True(t, d.IsFree())
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores busy driver", func(t *testing.T) {
		tripID := kernel.NewUUID()

		d, err := driver.RestoreDriver(kernel.NewUUID(), "Orion", "Driftwood", &tripID)

		require.NoError(t, err)
		assert.False(t, d.IsFree())
		assert.True(t, d.CurrentTripID().IsEqual(tripID))
	})

	t.Run("restores free driver", func(t *testing.T) {
		d, err := driver.RestoreDriver(kernel.NewUUID(), "Orion", "Driftwood", nil)

		require.NoError(t, err)
		assert.True(t, d.IsFree())
	})

	t.Run("rejects zero reservation id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := driver.RestoreDriver(kernel.NewUUID(), "Orion", "Driftwood", &zero)
		require.Error(t, err)
	})
}

func TestDriver_Validate(t *testing.T) {
	var notConstructed driver.Driver
	require.ErrorIs(t, notConstructed.Validate(), driver.ErrDriverIsNotConstructed)

	var nilDriver *driver.Driver
	require.ErrorIs(t, nilDriver.Validate(), driver.ErrDriverIsNotConstructed)
}
