package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
	assert.NotEqual(t, kernel.NewUUID(), id)
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid string round-trips", func(t *testing.T) {
		const raw = "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("invalid string is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(original))
	})

	t.Run("nil UUID is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := a

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
}
